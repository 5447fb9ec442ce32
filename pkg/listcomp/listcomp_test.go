package listcomp_test

import (
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/listcomp/pkg/listcomp"
)

func TestEvenFilter(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input []int
		want  []int
	}{
		"empty input": {
			input: []int{},
			want:  []int{},
		},
		"nil input": {
			input: nil,
			want:  []int{},
		},
		"only odds": {
			input: []int{1, 3, 5, 7, 9},
			want:  []int{},
		},
		"zero through nine": {
			input: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			want:  []int{0, 2, 4, 6, 8},
		},
		"negative numbers": {
			input: []int{-5, -4, -3, -2, -1},
			want:  []int{-4, -2},
		},
		"order and duplicates preserved": {
			input: []int{8, 3, 2, 8, 7, 2},
			want:  []int{8, 2, 8, 2},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := listcomp.EvenFilter(tc.input)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvenFilter_IntegerKinds(t *testing.T) {
	t.Parallel()

	type score uint8

	assert.Equal(t, []int64{-10, 0, 10}, listcomp.EvenFilter([]int64{-10, -7, 0, 7, 10}))
	assert.Equal(t, []score{2, 254}, listcomp.EvenFilter([]score{1, 2, 255, 254}))
}

func TestEvenFilter_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3, 4}
	orig := slices.Clone(input)

	got := listcomp.EvenFilter(input)
	got[0] = 100

	assert.Equal(t, orig, input)
}

func TestEvenFilter_Subsequence(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		input := make([]int, rng.IntN(50))
		for i := range input {
			input[i] = rng.IntN(2001) - 1000
		}

		got := listcomp.EvenFilter(input)

		// Walk the input once; every output element must appear in order.
		j := 0
		evens := 0
		for _, n := range input {
			if n%2 != 0 {
				continue
			}

			evens++
			require.Less(t, j, len(got))
			assert.Equal(t, n, got[j])
			j++
		}

		assert.Len(t, got, evens)
	}
}

func TestExclaimTransform(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input []string
		want  []string
	}{
		"empty input": {
			input: []string{},
			want:  []string{},
		},
		"nil input": {
			input: nil,
			want:  []string{},
		},
		"sentences": {
			input: []string{
				"I like computers",
				"I require coffee",
				"Live long and prosper",
			},
			want: []string{
				"I like computers!",
				"I require coffee!",
				"Live long and prosper!",
			},
		},
		"empty string element": {
			input: []string{"", "a"},
			want:  []string{"!", "a!"},
		},
		"already exclaimed": {
			input: []string{"wow!"},
			want:  []string{"wow!!"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := listcomp.ExclaimTransform(tc.input)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExclaimTransform_NotIdempotent(t *testing.T) {
	t.Parallel()

	once := listcomp.ExclaimTransform([]string{"hello"})
	twice := listcomp.ExclaimTransform(once)

	assert.Equal(t, []string{"hello!"}, once)
	assert.Equal(t, []string{"hello!!"}, twice)
}

func TestExclaimTransform_LengthAndSuffix(t *testing.T) {
	t.Parallel()

	input := strings.Fields("the quick brown fox jumps over the lazy dog")
	orig := slices.Clone(input)

	got := listcomp.ExclaimTransform(input)

	require.Len(t, got, len(input))
	for i := range input {
		assert.Equal(t, input[i]+"!", got[i])
	}

	assert.Equal(t, orig, input)
}

func TestExclaimTransform_StringKinds(t *testing.T) {
	t.Parallel()

	type greeting string

	got := listcomp.ExclaimTransform([]greeting{"hi", "hey"})
	assert.Equal(t, []greeting{"hi!", "hey!"}, got)
}

func TestFilterAndMap(t *testing.T) {
	t.Parallel()

	short := listcomp.Filter([]string{"a", "bbb", "cc"}, func(s string) bool { return len(s) < 3 })
	assert.Equal(t, []string{"a", "cc"}, short)

	lengths := listcomp.Map([]string{"a", "bbb", "cc"}, func(s string) int { return len(s) })
	assert.Equal(t, []int{1, 3, 2}, lengths)

	assert.NotNil(t, listcomp.Map[int, int](nil, func(n int) int { return n }))
}

func TestConcurrentCalls(t *testing.T) {
	t.Parallel()

	nums := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	sentences := []string{"a", "b"}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			assert.Equal(t, []int{0, 2, 4, 6, 8}, listcomp.EvenFilter(nums))
			assert.Equal(t, []string{"a!", "b!"}, listcomp.ExclaimTransform(sentences))
		}()
	}
	wg.Wait()
}
