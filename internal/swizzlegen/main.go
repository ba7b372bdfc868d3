// Command swizzlegen writes the named swizzle accessors of the math3d vector
// types: a getter for every ordered combination of axis letters (repeats
// allowed) and a Set method for every combination of distinct letters.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
)

var output = flag.String("o", "swizzle_gen.go", "output file")

var vectorTypes = []struct {
	name string
	axes string
}{
	{"Vec2", "xy"},
	{"Vec3", "xyz"},
	{"Vec4", "xyzw"},
}

func main() {
	flag.Parse()

	src, err := generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "swizzlegen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "swizzlegen: %v\n", err)
		os.Exit(1)
	}
}

func generate() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by swizzlegen. DO NOT EDIT.\n\npackage math3d\n")

	for _, t := range vectorTypes {
		for n := 2; n <= len(t.axes); n++ {
			fmt.Fprintf(&b, "\n// %s reads, %d components.\n\n", t.name, n)
			for _, s := range combinations(t.axes, n, true) {
				writeGetter(&b, t.name, s)
			}
		}
		for n := 2; n <= len(t.axes); n++ {
			fmt.Fprintf(&b, "\n// %s writes, %d components.\n\n", t.name, n)
			for _, s := range combinations(t.axes, n, false) {
				writeSetter(&b, t.name, s)
			}
		}
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return src, nil
}

func writeGetter(b *bytes.Buffer, typ, letters string) {
	fields := make([]string, len(letters))
	for i, r := range letters {
		fields[i] = "v." + strings.ToUpper(string(r))
	}
	result := fmt.Sprintf("Vec%d", len(letters))
	fmt.Fprintf(b, "func (v %s) %s() %s { return %s{%s} }\n",
		typ, strings.ToUpper(letters), result, result, strings.Join(fields, ", "))
}

func writeSetter(b *bytes.Buffer, typ, letters string) {
	fmt.Fprintf(b, "func (v *%s) Set%s(o Operand) *%s { return unswizzle(v, %q, o) }\n",
		typ, strings.ToUpper(letters), typ, letters)
}

// combinations lists the ordered n-letter strings over axes, in axis order.
// When repeat is false each letter is used at most once.
func combinations(axes string, n int, repeat bool) []string {
	if n == 0 {
		return []string{""}
	}
	var out []string
	for _, prefix := range combinations(axes, n-1, repeat) {
		for _, r := range axes {
			if !repeat && strings.ContainsRune(prefix, r) {
				continue
			}
			out = append(out, prefix+string(r))
		}
	}
	return out
}
