package mesh

import "math"

// ApplyTranslation moves every vertex by (x, y, z). Normals are unchanged.
func (m *Mesh) ApplyTranslation(x, y, z float64) {
	for i := 0; i < len(m.Vertices); i += 3 {
		m.Vertices[i] += float32(x)
		m.Vertices[i+1] += float32(y)
		m.Vertices[i+2] += float32(z)
	}
}

// ApplyScale scales every vertex about the origin by per-axis factors.
// Normals are divided by the factors and renormalized; zero factors leave
// the corresponding normal component untouched.
func (m *Mesh) ApplyScale(sx, sy, sz float64) {
	s := [3]float64{sx, sy, sz}
	for i := 0; i < len(m.Vertices); i += 3 {
		for ax := 0; ax < 3; ax++ {
			m.Vertices[i+ax] = float32(float64(m.Vertices[i+ax]) * s[ax])
		}
	}
	for i := 0; i < len(m.Normals); i += 3 {
		var n [3]float64
		for ax := 0; ax < 3; ax++ {
			n[ax] = float64(m.Normals[i+ax])
			if s[ax] != 0 {
				n[ax] /= s[ax]
			}
		}
		ln := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		if ln > 0 {
			for ax := 0; ax < 3; ax++ {
				m.Normals[i+ax] = float32(n[ax] / ln)
			}
		}
	}
}

// ApplyRotation rotates vertices and normals about the given axis through
// the origin by angle radians (Rodrigues rotation). A zero axis is a no-op.
func (m *Mesh) ApplyRotation(axis [3]float64, angle float64) {
	ln := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if ln == 0 {
		return
	}
	k := [3]float64{axis[0] / ln, axis[1] / ln, axis[2] / ln}
	sin, cos := math.Sincos(angle)

	rotate := func(v [3]float64) [3]float64 {
		kv := [3]float64{
			k[1]*v[2] - k[2]*v[1],
			k[2]*v[0] - k[0]*v[2],
			k[0]*v[1] - k[1]*v[0],
		}
		kd := k[0]*v[0] + k[1]*v[1] + k[2]*v[2]
		var out [3]float64
		for ax := 0; ax < 3; ax++ {
			out[ax] = v[ax]*cos + kv[ax]*sin + k[ax]*kd*(1-cos)
		}
		return out
	}

	for i := 0; i < len(m.Vertices); i += 3 {
		v := rotate([3]float64{float64(m.Vertices[i]), float64(m.Vertices[i+1]), float64(m.Vertices[i+2])})
		m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2] = float32(v[0]), float32(v[1]), float32(v[2])
	}
	for i := 0; i < len(m.Normals); i += 3 {
		n := rotate([3]float64{float64(m.Normals[i]), float64(m.Normals[i+1]), float64(m.Normals[i+2])})
		m.Normals[i], m.Normals[i+1], m.Normals[i+2] = float32(n[0]), float32(n[1]), float32(n[2])
	}
}
