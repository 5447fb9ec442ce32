// Package listcomp provides pure, single-pass transformations over slices.
//
// [EvenFilter] keeps the even integers of a slice and [ExclaimTransform]
// appends "!" to every string. Both return a freshly allocated slice, never
// modify their input, and are safe for concurrent use.
package listcomp
