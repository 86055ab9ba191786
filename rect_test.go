package cropbox_test

import (
	"testing"

	"deedles.dev/cropbox"
	"deedles.dev/cropbox/geom"
	"github.com/stretchr/testify/require"
)

func TestRect(t *testing.T) {
	r := cropbox.RectAt(10, 20, 30, 40)
	require.Equal(t, geom.Pt(40.0, 60), r.Max())
	require.Equal(t, geom.Rt(10.0, 20, 40, 60), r.Bounds())
	require.Equal(t, r, cropbox.FromBounds(r.Bounds()))
	require.Equal(t, "(10,20)+(30,40)", r.String())
	require.False(t, r.Empty())
	require.True(t, cropbox.RectAt(10, 20, 0, 40).Empty())
}
