// internal/query/facade_test.go
package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/tamzrod/diag-panel/internal/bitfield"
	"github.com/tamzrod/diag-panel/internal/parse"
)

// fakeRunner serves canned tool output, keyed by the joined argument
// list ("" is the no-argument scan).
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error

	viewerOutputs map[string]string
	viewerErr     error

	calls []string
	dirs  []string
}

func (f *fakeRunner) Run(args ...string) (string, error) {
	return f.RunInDir("", args...)
}

func (f *fakeRunner) RunInDir(dir string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	f.dirs = append(f.dirs, dir)

	if err := f.errs[key]; err != nil {
		return "", err
	}
	return f.outputs[key], nil
}

func (f *fakeRunner) RunViewer(flag, fileName string) (string, error) {
	key := flag + " " + fileName
	f.calls = append(f.calls, key)

	if f.viewerErr != nil {
		return "", f.viewerErr
	}
	return f.viewerOutputs[key], nil
}

// ---- tests ----

func TestDevices(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"": "scanning...\n" +
			"ID:0012,Family=Watch/2,a,Ver 1.2.3,b,Flags=0x40000008\n" +
			"ID:13,this line is garbled\n" +
			"done\n",
	}}
	f := New(r)

	devices, errLog := f.Devices()
	if len(devices) != 1 {
		t.Fatalf("got %d devices, want 1", len(devices))
	}
	if devices[0].ID != "12" {
		t.Fatalf("device id %q, want %q", devices[0].ID, "12")
	}
	if devices[0].HRMode != bitfield.ModeBluetoothHR {
		t.Fatalf("hr mode %q", devices[0].HRMode)
	}
	if !strings.Contains(errLog, "failed to parse line: ID:13") {
		t.Fatalf("marker line not surfaced in error log: %q", errLog)
	}
}

func TestDevices_NoneFound(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"": "scan finished, nothing attached\n"}}
	f := New(r)

	devices, errLog := f.Devices()
	if len(devices) != 0 {
		t.Fatalf("got %d devices, want 0", len(devices))
	}
	if errLog != "No devices found. Check connection." {
		t.Fatalf("error log %q", errLog)
	}
}

func TestDevices_RunnerFailure(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"": errors.New("tool not found")}}
	f := New(r)

	devices, errLog := f.Devices()
	if devices != nil {
		t.Fatalf("expected no devices, got %v", devices)
	}
	if errLog != "tool not found" {
		t.Fatalf("error log %q", errLog)
	}
}

func TestRadioConfigs(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"-gsp": "ID:01,band,txCode=9,rxCode=9\nID:02,band,txCode=5,rxCode=7\n",
	}}
	f := New(r)

	configs, errLog := f.RadioConfigs()
	if errLog != "" {
		t.Fatalf("unexpected error log: %q", errLog)
	}
	if len(configs) != 2 {
		t.Fatalf("got %d configs, want 2", len(configs))
	}
	if configs[0].Class != parse.RadioDefault {
		t.Fatalf("first class %q", configs[0].Class)
	}
	if configs[1].Class != parse.RadioUnknown || configs[1].Display != "Unknown (tx=5, rx=7)" {
		t.Fatalf("second config %+v", configs[1])
	}
}

func TestPublicKeys(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"-gpk": "ID:09, Public Key Hash=abc123\nnoise\n",
	}}
	f := New(r)

	keys, errLog := f.PublicKeys()
	if errLog != "" {
		t.Fatalf("unexpected error log: %q", errLog)
	}
	if len(keys) != 1 || keys[0].ID != "9" || keys[0].KeyHash != "abc123" {
		t.Fatalf("keys %+v", keys)
	}
}

func TestSessions(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"-si": "Id:007 Total Sessions:1\nSession 1: length=10,Duration=5 secs,createTime X UTC\n",
	}}
	f := New(r)

	groups, errLog := f.Sessions()
	if errLog != "" {
		t.Fatalf("unexpected error log: %q", errLog)
	}
	if len(groups) != 1 || groups[0].DeviceID != "7" || len(groups[0].Sessions) != 1 {
		t.Fatalf("groups %+v", groups)
	}
}

func TestSetHRMode_CommandOrder(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{}}
	f := New(r)

	out, err := f.SetHRMode(bitfield.ModePolarStrap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"-ds 3", "-dc 28", "-dc 30"}
	if len(r.calls) != len(want) {
		t.Fatalf("got %d calls, want %d", len(r.calls), len(want))
	}
	for i, w := range want {
		if r.calls[i] != w {
			t.Fatalf("call %d is %q, want %q", i, r.calls[i], w)
		}
	}
	if !strings.Contains(out, "HR Mode setting complete") {
		t.Fatalf("log missing completion marker: %q", out)
	}
}

func TestSetHRMode_AbortsOnFirstFailure(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"-ds 3": errors.New("device busy")}}
	f := New(r)

	out, err := f.SetHRMode(bitfield.ModeIntegratedHR)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if len(r.calls) != 1 {
		t.Fatalf("got %d calls, want 1 (sequence must abort on first failure)", len(r.calls))
	}
	if !strings.Contains(out, "ERROR: -ds 3") {
		t.Fatalf("log missing failed step: %q", out)
	}
}

func TestSetHRMode_InvalidMode(t *testing.T) {
	f := New(&fakeRunner{})

	if _, err := f.SetHRMode(bitfield.ModeUnknown); err == nil {
		t.Fatalf("expected error for unsettable mode")
	}
	if _, err := f.SetHRMode(bitfield.HRMode("Turbo")); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestSetRadioConfig(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{}}
	f := New(r)

	if _, err := f.SetRadioConfig(parse.RadioAlternative); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(r.calls))
	}
	if !strings.HasPrefix(r.calls[0], "-ssp 5 1 36 1 3 3 ") {
		t.Fatalf("call %q does not carry the alternative tx/rx codes", r.calls[0])
	}

	if _, err := f.SetRadioConfig(parse.RadioUnknown); err == nil {
		t.Fatalf("expected error for unknown radio class")
	}
}

func TestDownloadSessions_ContinuesPastFailure(t *testing.T) {
	r := &fakeRunner{
		outputs: map[string]string{"-id 7 -sd 2": "saved session 2"},
		errs:    map[string]error{"-id 7 -sd 1": errors.New("read failed")},
	}
	f := New(r)
	dir := t.TempDir()

	out, err := f.DownloadSessions("7", []int{1, 2}, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.calls) != 2 {
		t.Fatalf("got %d calls, want 2 (downloads are independent)", len(r.calls))
	}
	if r.dirs[0] != dir || r.dirs[1] != dir {
		t.Fatalf("downloads did not run from %q: %v", dir, r.dirs)
	}
	if !strings.Contains(out, "ERROR: read failed") || !strings.Contains(out, "SUCCESS: saved session 2") {
		t.Fatalf("log %q", out)
	}
}

func TestAnalyzeBattery(t *testing.T) {
	r := &fakeRunner{viewerOutputs: map[string]string{
		"-d run.raw": "header\nab 0.0 DATA: Battery=4.0V, 50%\ncd 3600.0 DATA: Battery=3.5V, 20%\n",
	}}
	f := New(r)

	points, summary, errLog := f.AnalyzeBattery("run.raw")
	if errLog != "" {
		t.Fatalf("unexpected error log: %q", errLog)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if summary.Elapsed != "01:00" || summary.Drop != "30%" {
		t.Fatalf("summary %+v", summary)
	}
}

func TestAnalyzeBattery_ViewerFailure(t *testing.T) {
	r := &fakeRunner{viewerErr: errors.New("viewer not found")}
	f := New(r)

	points, summary, errLog := f.AnalyzeBattery("run.raw")
	if errLog != "viewer not found" {
		t.Fatalf("error log %q", errLog)
	}
	if points != nil || summary.HasData {
		t.Fatalf("expected empty result, got points=%v summary=%+v", points, summary)
	}
}

func TestAnalyzeOrientation(t *testing.T) {
	r := &fakeRunner{viewerOutputs: map[string]string{
		"-R run.raw": "preamble\n+++ru\n..+uru\n",
	}}
	f := New(r)

	summary, errLog := f.AnalyzeOrientation("run.raw")
	if errLog != "" {
		t.Fatalf("unexpected error log: %q", errLog)
	}
	if summary.Sample != "..+uru" {
		t.Fatalf("sample %q, want last matching line", summary.Sample)
	}
	if summary.Okay != 1 || summary.UpsideDown != 2 {
		t.Fatalf("summary %+v", summary)
	}
}

func TestRefresh_CategoriesIndependent(t *testing.T) {
	r := &fakeRunner{
		outputs: map[string]string{
			"-gsp": "ID:1,band,txCode=9,rxCode=9\n",
			"-gpk": "ID:1, Public Key Hash=ff00\n",
			"-si":  "Id:1 Total Sessions:0\n",
		},
		errs: map[string]error{"": errors.New("scan timed out")},
	}
	f := New(r)

	st := f.Refresh()
	if st.DevicesErr != "scan timed out" {
		t.Fatalf("devices error %q", st.DevicesErr)
	}
	if len(st.Radio) != 1 || len(st.Keys) != 1 || len(st.Sessions) != 1 {
		t.Fatalf("other categories not attempted: radio=%d keys=%d sessions=%d",
			len(st.Radio), len(st.Keys), len(st.Sessions))
	}
	if st.ScannedAt.IsZero() {
		t.Fatalf("scan timestamp not set")
	}
}
