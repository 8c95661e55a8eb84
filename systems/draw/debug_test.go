package draw

import (
	"image/color"
	"testing"

	"github.com/automoto/starcatch/tags"
	"github.com/solarlune/resolv"
)

func TestObjectColorFollowsResolvTags(t *testing.T) {
	cases := []struct {
		name string
		tags []string
		want color.RGBA
	}{
		{"wall", []string{tags.ResolvSolid}, solidColor},
		{"player", []string{tags.ResolvPlayer}, playerColor},
		{"star", []string{tags.ResolvSensor}, sensorColor},
		{"untagged", nil, colliderColor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			obj := resolv.NewObject(0, 0, 8, 8, tc.tags...)
			if got := objectColor(obj); got != tc.want {
				t.Errorf("color = %v, want %v", got, tc.want)
			}
		})
	}
}
