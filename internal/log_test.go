// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestLogAlsoToFile(t *testing.T) {
	var buf bytes.Buffer
	LogSetOutput(&buf)
	defer LogSetOutput(os.Stdout)

	fileName := filepath.Join(t.TempDir(), "qsort.log")
	if err := LogAlsoToFile(fileName); err != nil {
		t.Fatalf("LogAlsoToFile: %v", err)
	}
	LogPrint("a", "b")
	LogPrintln()
	LogPrintf("n=%d\n", 3)
	if err := LogSync(); err != nil {
		t.Fatalf("LogSync: %v", err)
	}
	if err := LogCloseFile(); err != nil {
		t.Fatalf("LogCloseFile: %v", err)
	}

	want := "ab\nn=3\n"
	if got := buf.String(); got != want {
		t.Errorf("stdout %q; want %q", got, want)
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != want {
		t.Errorf("file %q; want %q", got, want)
	}

	// further output no longer reaches the closed file
	LogPrintln("x")
	data, _ = os.ReadFile(fileName)
	if string(data) != want {
		t.Errorf("file changed after close: %q", data)
	}
}

func TestLogAlsoToFileError(t *testing.T) {
	err := LogAlsoToFile(filepath.Join(t.TempDir(), "missing", "qsort.log"))
	if err == nil {
		LogCloseFile()
		t.Fatalf("LogAlsoToFile in missing directory succeeded; want error")
	}
	if err := LogSync(); err != nil {
		t.Errorf("LogSync without file: %v", err)
	}
}

func TestLogSetOutputNil(t *testing.T) {
	LogSetOutput(nil)
	defer LogSetOutput(os.Stdout)
	if _, err := LogPrintf("discarded %d\n", 1); err != nil {
		t.Errorf("LogPrintf: %v", err)
	}
}
