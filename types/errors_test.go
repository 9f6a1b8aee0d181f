package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("empty miniscript string")
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Contains(t, err.Error(), "empty miniscript string")
}

func TestClassifyParseError(t *testing.T) {
	cases := map[string]struct {
		msg  string
		want error
	}{
		"plain parse failure": {
			msg:  "Failed to parse miniscript expression",
			want: ErrParse,
		},
		"type inference failure": {
			msg:  "Miniscript failed type check",
			want: ErrType,
		},
		"type mentioned in caps": {
			msg:  "Type error: fragment is not of type V",
			want: ErrType,
		},
		"no diagnostic": {
			msg:  "",
			want: ErrParse,
		},
		"allocation failure": {
			msg:  "Memory allocation failed",
			want: ErrAllocation,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := ClassifyParseError(tc.msg)
			require.ErrorIs(t, err, tc.want)
			if tc.msg != "" {
				require.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestClassifyEngineError(t *testing.T) {
	err := ClassifyEngineError("Memory allocation failed")
	require.ErrorIs(t, err, ErrAllocation)
	require.Contains(t, err.Error(), "Memory allocation failed")

	err = ClassifyEngineError("satisfaction walk failed")
	require.ErrorIs(t, err, ErrUnknown)

	require.ErrorIs(t, ClassifyEngineError(""), ErrUnknown)
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidArgument, ErrParse, ErrType,
		ErrCallbackUnavailable, ErrAllocation, ErrClosed, ErrUnknown,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "%v must not match %v", a, b)
		}
	}
}
