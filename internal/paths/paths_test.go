package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "dot components dropped",
			path: filepath.FromSlash("a/./b/../c"),
			want: filepath.FromSlash("a/c"),
		},
		{
			name: "ascent above root collapses",
			path: filepath.FromSlash("/../x"),
			want: filepath.FromSlash("/x"),
		},
		{
			name: "ascent above relative head is kept",
			path: filepath.FromSlash("../../a"),
			want: filepath.FromSlash("../../a"),
		},
		{
			name: "parent cancels normal segment",
			path: filepath.FromSlash("a/b/.."),
			want: "a",
		},
		{
			name: "empty path becomes current directory",
			path: "",
			want: ".",
		},
		{
			name: "lone dot stays",
			path: ".",
			want: ".",
		},
		{
			name: "redundant separators collapse",
			path: filepath.FromSlash("/a//b///c"),
			want: filepath.FromSlash("/a/b/c"),
		},
		{
			name: "trailing separator dropped",
			path: filepath.FromSlash("/a/b/"),
			want: filepath.FromSlash("/a/b"),
		},
		{
			name: "mixed ascent and descent",
			path: filepath.FromSlash("a/../../b"),
			want: filepath.FromSlash("../b"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.path)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		filepath.FromSlash("a/./b/../c"),
		filepath.FromSlash("/../x"),
		filepath.FromSlash("../../a"),
		"",
		".",
		filepath.FromSlash("/a//b/"),
	}

	for _, p := range inputs {
		once := Normalize(p)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", p, once, twice)
		}
	}
}

func TestAbsolutize(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("absolute path normalized as-is", func(t *testing.T) {
		in := filepath.FromSlash("/opt/./jdk11")
		got, err := Absolutize(in)
		if err != nil {
			t.Fatalf("Absolutize(%q) error: %v", in, err)
		}
		want := filepath.FromSlash("/opt/jdk11")
		if got != want {
			t.Errorf("Absolutize(%q) = %q, want %q", in, got, want)
		}
	})

	t.Run("relative path anchored at working directory", func(t *testing.T) {
		got, err := Absolutize("sub")
		if err != nil {
			t.Fatalf("Absolutize error: %v", err)
		}
		want := filepath.Join(wd, "sub")
		if got != want {
			t.Errorf("Absolutize(%q) = %q, want %q", "sub", got, want)
		}
	})

	t.Run("result is absolute", func(t *testing.T) {
		got, err := Absolutize(filepath.FromSlash("a/../b"))
		if err != nil {
			t.Fatalf("Absolutize error: %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("Absolutize returned relative path %q", got)
		}
	})
}

func TestIsAncestor(t *testing.T) {
	tests := []struct {
		name     string
		ancestor string
		child    string
		want     bool
	}{
		{
			name:     "equal paths",
			ancestor: filepath.FromSlash("/a/b"),
			child:    filepath.FromSlash("/a/b"),
			want:     true,
		},
		{
			name:     "direct child",
			ancestor: filepath.FromSlash("/a"),
			child:    filepath.FromSlash("/a/b"),
			want:     true,
		},
		{
			name:     "deep descendant",
			ancestor: filepath.FromSlash("/a"),
			child:    filepath.FromSlash("/a/b/c/d"),
			want:     true,
		},
		{
			name:     "sibling with common string prefix",
			ancestor: filepath.FromSlash("/foo"),
			child:    filepath.FromSlash("/foobar"),
			want:     false,
		},
		{
			name:     "parent is not a descendant",
			ancestor: filepath.FromSlash("/a/b"),
			child:    filepath.FromSlash("/a"),
			want:     false,
		},
		{
			name:     "root is ancestor of everything",
			ancestor: filepath.FromSlash("/"),
			child:    filepath.FromSlash("/x/y"),
			want:     true,
		},
		{
			name:     "unrelated trees",
			ancestor: filepath.FromSlash("/a"),
			child:    filepath.FromSlash("/z"),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsAncestor(tt.ancestor, tt.child)
			if got != tt.want {
				t.Errorf("IsAncestor(%q, %q) = %v, want %v", tt.ancestor, tt.child, got, tt.want)
			}
		})
	}
}
