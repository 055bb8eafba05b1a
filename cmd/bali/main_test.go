package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cuthbertlab/bali/pkg/config"
	"github.com/cuthbertlab/bali/pkg/drum"
	"github.com/cuthbertlab/bali/pkg/midi"
)

const gong4 = "(4)- ● - 1 - ● - 2 - ● - 3 - ● – 4"

func TestWriteMidiFile(t *testing.T) {
	dir := t.TempDir()

	good := drum.NewPattern(drum.Taught, "Pak Tama Lanang 0 (intro)", gong4, "(_)_ _ e e _ e _ e _ e _ e _ e T _")
	path := filepath.Join(dir, "intro.mid")
	if err := writeMidiFile(path, []*drum.Pattern{good}, midi.Options{}); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("written file: %v, %v", fi, err)
	}

	bad := drum.NewPattern(drum.Taught, "broken", gong4, "(_)e e T")
	path = filepath.Join(dir, "broken.mid")
	if err := writeMidiFile(path, []*drum.Pattern{bad}, midi.Options{}); err == nil {
		t.Fatal("malformed pattern written without error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial file left behind: %v", err)
	}

	if err := writeMidiFile(filepath.Join(dir, "missing", "x.mid"), []*drum.Pattern{good}, midi.Options{}); err == nil {
		t.Error("create in a missing directory succeeded")
	}
}

func TestHelpRequested(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"-help"}} {
		_, err := config.Parse("bali", args)
		if !helpRequested(err) {
			t.Errorf("Parse(%v) = %v, want help", args, err)
		}
	}
	if _, err := config.Parse("bali", []string{"-level", "triple"}); helpRequested(err) {
		t.Error("invalid level reported as help")
	}
	if helpRequested(nil) {
		t.Error("nil error reported as help")
	}
}
