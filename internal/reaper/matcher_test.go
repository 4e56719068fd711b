package reaper

import (
	"slices"
	"testing"
)

func TestRecordArgv0(t *testing.T) {
	tests := []struct {
		cmdline string
		want    string
	}{
		{"", ""},
		{"   ", ""},
		{"python worker.py", "python"},
		{"/usr/bin/python3 -m http.server", "python3"},
		{`C:\Python312\python.exe app.py`, "python"},
		{"grep --color=auto python", "grep"},
	}
	for _, tt := range tests {
		if got := (Record{Cmdline: tt.cmdline}).Argv0(); got != tt.want {
			t.Errorf("Argv0(%q) = %q, want %q", tt.cmdline, got, tt.want)
		}
	}
}

func TestMatcherMatch(t *testing.T) {
	tests := []struct {
		name   string
		mode   string
		record Record
		target string
		want   bool
	}{
		{"substring hit", ModeSubstring, Record{Cmdline: "python worker.py"}, "python", true},
		{"substring python3", ModeSubstring, Record{Cmdline: "/usr/bin/python3 x.py"}, "python", true},
		{"substring incidental", ModeSubstring, Record{Cmdline: "vim python-notes.md"}, "python", true},
		{"substring case sensitive", ModeSubstring, Record{Cmdline: "Python app.py"}, "python", false},
		{"substring empty target", ModeSubstring, Record{Cmdline: "python"}, "", false},
		{"name exact", ModeName, Record{Name: "python", Cmdline: "python worker.py"}, "python", true},
		{"name via argv0", ModeName, Record{Cmdline: "/usr/bin/python worker.py"}, "python", true},
		{"name rejects python3", ModeName, Record{Name: "python3", Cmdline: "python3 x.py"}, "python", false},
		{"name rejects argument", ModeName, Record{Name: "vim", Cmdline: "vim python"}, "python", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.mode, nil, nil)
			if got := m.Match(tt.record, tt.target); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatcherSelect(t *testing.T) {
	records := []Record{
		{PID: 1, Cmdline: "python worker.py"},
		{PID: 2, Cmdline: "grep python"},
		{PID: 3, Cmdline: "/bin/grep -v grep"},
		{PID: 4, Cmdline: "python -m jupyter notebook"},
		{PID: 5, Cmdline: "python worker.py"},
		{PID: 1, Cmdline: "python worker.py"},
		{PID: 6, Cmdline: "sh -c python worker.py"},
	}

	m := NewMatcher(ModeSubstring, []string{"jupyter"}, []int32{6})
	got := m.Select(records, "python")

	var pids []int32
	for _, r := range got {
		pids = append(pids, r.PID)
	}
	if want := []int32{1, 5}; !slices.Equal(pids, want) {
		t.Errorf("Select() pids = %v, want %v", pids, want)
	}
}

func TestMatcherCustomSelfSignatures(t *testing.T) {
	m := NewMatcher(ModeSubstring, nil, nil)
	m.SelfSignatures = []string{"grep", "pgrep"}

	if !m.IsSelf(Record{PID: 9, Cmdline: "pgrep -f python"}) {
		t.Errorf("pgrep should be treated as a filter artifact")
	}
	if m.IsSelf(Record{PID: 9, Cmdline: "python grep.py"}) {
		t.Errorf("argument named grep must not count as a filter artifact")
	}
}

func TestMatcherDefaultSignaturesNotShared(t *testing.T) {
	m := NewMatcher("", nil, nil)
	if m.Mode != ModeSubstring {
		t.Errorf("default mode = %q, want %q", m.Mode, ModeSubstring)
	}
	m.SelfSignatures[0] = "changed"
	if DefaultSelfSignatures[0] != "grep" {
		t.Errorf("NewMatcher leaked the default signature slice")
	}
}
