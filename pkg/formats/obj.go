// Package formats provides parsers and encoders for mesh file formats.
package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/meshview/pkg/math"
)

// OBJ holds the geometry read from a Wavefront-style text mesh.
// Faces are triangulated on parse; the original polygon grouping is not kept.
type OBJ struct {
	Vertices  []math.Vec3
	Triangles [][3]int

	// SkippedRecords counts malformed vertex or face records that were
	// dropped during parsing. The caller decides whether to log them.
	SkippedRecords int
}

// ParseOBJ reads a whitespace-delimited mesh description. Vertex lines are
// "v x y z"; face lines are "f" followed by at least three vertex references.
// References are 1-based, negative values resolve relative to the number of
// vertices parsed so far, and slash-delimited texture/normal fields are
// ignored. Blank lines, comment lines starting with "#", and unknown keywords
// are skipped. Malformed records degrade to a smaller mesh instead of
// failing the parse.
func ParseOBJ(data []byte) *OBJ {
	o := &OBJ{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, ok := parseVertex(fields[1:])
			if !ok {
				o.SkippedRecords++
				continue
			}
			o.Vertices = append(o.Vertices, v)

		case "f":
			refs := resolveFaceRefs(fields[1:], len(o.Vertices))
			if len(refs) < 3 {
				o.SkippedRecords++
				continue
			}
			// Fan triangulation anchored at the first reference.
			for i := 1; i+1 < len(refs); i++ {
				o.Triangles = append(o.Triangles, [3]int{refs[0], refs[i], refs[i+1]})
			}
		}
	}

	return o
}

// parseVertex parses three floats from the record fields.
func parseVertex(fields []string) (math.Vec3, bool) {
	if len(fields) < 3 {
		return math.Vec3{}, false
	}
	var c [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return math.Vec3{}, false
		}
		c[i] = float32(f)
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, true
}

// resolveFaceRefs converts face tokens to zero-based vertex indices.
// Tokens that fail to parse or fall outside the current vertex range are
// dropped; the caller rejects faces left with fewer than three references.
func resolveFaceRefs(fields []string, vertexCount int) []int {
	refs := make([]int, 0, len(fields))
	for _, tok := range fields {
		// Only the vertex reference before the first slash is consumed.
		if i := strings.IndexByte(tok, '/'); i >= 0 {
			tok = tok[:i]
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		idx := n - 1
		if n < 0 {
			// -1 refers to the last vertex parsed so far.
			idx = vertexCount + n
		}
		if idx < 0 || idx >= vertexCount || n == 0 {
			continue
		}
		refs = append(refs, idx)
	}
	return refs
}

// EncodeOBJ writes the mesh back out as text: a header comment, one "v" line
// per vertex in original order, then one "f" line per triangle with 1-based
// indices. Texture and normal references are never emitted.
func EncodeOBJ(o *OBJ) []byte {
	var buf bytes.Buffer

	buf.WriteString("# exported by meshview\n")
	for _, v := range o.Vertices {
		buf.WriteString("v ")
		buf.WriteString(formatCoord(v.X))
		buf.WriteByte(' ')
		buf.WriteString(formatCoord(v.Y))
		buf.WriteByte(' ')
		buf.WriteString(formatCoord(v.Z))
		buf.WriteByte('\n')
	}
	for _, t := range o.Triangles {
		fmt.Fprintf(&buf, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}

	return buf.Bytes()
}

// formatCoord renders a float32 with just enough digits to round-trip.
func formatCoord(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
