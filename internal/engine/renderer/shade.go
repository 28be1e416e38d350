package renderer

import (
	gomath "math"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/scene"
	"github.com/Faultbox/meshview/pkg/math"
)

// Ambient is the base light term every lit surface receives.
const Ambient = 0.15

// Shininess is the specular exponent.
const Shininess = 64

// lightDir is the fixed directional light, normalized once.
var lightDir = math.Vec3{X: -0.4, Y: 0.7, Z: -0.6}.Normalize()

// ShadedTriangle is the transient unit the compositor sorts and draws,
// rebuilt every frame.
type ShadedTriangle struct {
	A, B, C  math.Vec3 // view space
	AvgZ     float32
	Normal   math.Vec3
	Diffuse  float32
	Specular float32
	Color    scene.Color
	Object   int
}

// shadeScene transforms, screens, and shades every triangle of every object,
// producing the flat cross-object draw list. Triangles behind the primitive
// near guard, facing away from the eye, or carrying invalid indices are
// dropped here.
func shadeScene(s *scene.Scene, cam *camera.Camera, specular bool, stats *FrameStats) []ShadedTriangle {
	var out []ShadedTriangle

	for objIdx, obj := range s.Objects {
		m := obj.Mesh
		if m == nil {
			continue
		}
		for _, tri := range m.Triangles {
			if !validIndices(tri, len(m.Vertices)) {
				continue
			}

			a := cam.ApplyView(ApplyModel(m.Vertices[tri[0]], obj))
			b := cam.ApplyView(ApplyModel(m.Vertices[tri[1]], obj))
			c := cam.ApplyView(ApplyModel(m.Vertices[tri[2]], obj))

			if a.Z <= primitiveNearEpsilon || b.Z <= primitiveNearEpsilon || c.Z <= primitiveNearEpsilon {
				stats.NearRejected++
				continue
			}

			// Unnormalized first: the cull test only needs the sign.
			normal := b.Sub(a).Cross(c.Sub(a))

			// The eye sits at the view-space origin looking down +Z, so
			// vertex a doubles as the view vector for the facing test.
			if normal.Dot(a) >= 0 {
				stats.Culled++
				continue
			}
			normal = normal.Normalize()

			diffuse := float32(1)
			spec := float32(0)
			if !obj.Unlit {
				raw := normal.Dot(lightDir)
				if raw < 0 {
					raw = 0
				}
				diffuse = Ambient + (1-Ambient)*raw

				if specular && diffuse > Ambient {
					centroid := a.Add(b).Add(c).Scale(1.0 / 3.0)
					viewVec := centroid.Neg().Normalize()
					refl := lightDir.Reflect(normal)
					if d := refl.Dot(viewVec); d > 0 {
						spec = float32(gomath.Pow(float64(d), Shininess))
					}
				}
			}

			out = append(out, ShadedTriangle{
				A:        a,
				B:        b,
				C:        c,
				AvgZ:     (a.Z + b.Z + c.Z) / 3,
				Normal:   normal,
				Diffuse:  diffuse,
				Specular: spec,
				Color:    obj.Color,
				Object:   objIdx,
			})
		}
	}

	return out
}

func validIndices(tri [3]int, vertexCount int) bool {
	for _, i := range tri {
		if i < 0 || i >= vertexCount {
			return false
		}
	}
	return true
}
