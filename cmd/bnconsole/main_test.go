package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureOutput runs fn with os.Stdout redirected to a pipe and
// returns everything written to it, since the command Run funcs print
// straight to fmt.Println rather than a cobra-configurable writer.
func captureOutput(fn func()) string {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	orig := os.Stdout
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func runCmd(args ...string) string {
	return captureOutput(func() {
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			panic(err)
		}
	})
}

func TestAddCmd(t *testing.T) {
	out := strings.TrimSpace(runCmd("add", "2", "3"))
	if out != "5" {
		t.Fatalf("bnconsole add 2 3 = %q, want %q", out, "5")
	}
}

func TestMulHexArgs(t *testing.T) {
	out := strings.TrimSpace(runCmd("mul", "0x10", "0x10"))
	if out != "256" {
		t.Fatalf("bnconsole mul 0x10 0x10 = %q, want %q", out, "256")
	}
}

func TestModCmd(t *testing.T) {
	out := strings.TrimSpace(runCmd("mod", "-7", "3"))
	if out != "2" {
		t.Fatalf("bnconsole mod -7 3 = %q, want %q (Euclidean remainder)", out, "2")
	}
}

func TestGcdCmd(t *testing.T) {
	out := strings.TrimSpace(runCmd("gcd", "48", "18"))
	if out != "6" {
		t.Fatalf("bnconsole gcd 48 18 = %q, want %q", out, "6")
	}
}

func TestJacobiCmd(t *testing.T) {
	out := strings.TrimSpace(runCmd("jacobi", "19", "45"))
	if out != "1" {
		t.Fatalf("bnconsole jacobi 19 45 = %q, want %q", out, "1")
	}
}

func TestIsPrimeCmd(t *testing.T) {
	out := strings.TrimSpace(runCmd("isprime", "97"))
	if out != "probably prime" {
		t.Fatalf("bnconsole isprime 97 = %q, want %q", out, "probably prime")
	}
	out = strings.TrimSpace(runCmd("isprime", "100"))
	if out != "composite" {
		t.Fatalf("bnconsole isprime 100 = %q, want %q", out, "composite")
	}
}

func TestNextPrimeCmd(t *testing.T) {
	out := strings.TrimSpace(runCmd("nextprime", "100"))
	if out != "101" {
		t.Fatalf("bnconsole nextprime 100 = %q, want %q", out, "101")
	}
}

func TestPowmCmd(t *testing.T) {
	out := strings.TrimSpace(runCmd("powm", "4", "13", "497"))
	if out != "445" {
		t.Fatalf("bnconsole powm 4 13 497 = %q, want %q", out, "445")
	}
}

func TestInfoCmdRuns(t *testing.T) {
	out := runCmd("info")
	if !strings.Contains(out, "word width: 64 bits") {
		t.Fatalf("bnconsole info output = %q, want it to mention the word width", out)
	}
}
