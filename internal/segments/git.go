package segments

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"trayline/internal/tray"
)

// gitProbeEvery bounds how often the git segment shells out. Status text in
// between replays the cached probe.
const gitProbeEvery = 5 * time.Second

type gitState struct {
	dir     string
	inRepo  bool
	branch  string
	dirty   bool
	probed  time.Time
	haveGit bool
}

// Git shows the current branch with a trailing * when the work tree is
// dirty. Probing runs in Refresh so a stale cache never blocks Fetch.
func Git(dir string) *tray.Segment {
	st := &gitState{dir: dir}
	return &tray.Segment{
		Name: "git",
		Setup: func() {
			_, err := exec.LookPath("git")
			st.haveGit = err == nil
		},
		Refresh: st.probe,
		Fetch: func() string {
			if !st.inRepo || st.branch == "" {
				return ""
			}
			if st.dirty {
				return st.branch + "*"
			}
			return st.branch
		},
	}
}

func (st *gitState) probe() {
	if !st.haveGit || time.Since(st.probed) < gitProbeEvery {
		return
	}
	st.probed = time.Now()

	if out, ok := st.git("rev-parse", "--is-inside-work-tree"); !ok || out != "true" {
		st.inRepo = false
		return
	}
	st.inRepo = true

	if out, ok := st.git("symbolic-ref", "--quiet", "--short", "HEAD"); ok && out != "" {
		st.branch = out
	} else if out, ok := st.git("rev-parse", "--short", "HEAD"); ok {
		// detached head: fall back to the commit
		st.branch = out
	}

	if out, ok := st.git("status", "--porcelain"); ok {
		st.dirty = out != ""
	}
}

// git runs one git subcommand against the segment's directory with a short
// timeout, returning trimmed output.
func (st *gitState) git(args ...string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 800*time.Millisecond)
	defer cancel()
	full := append([]string{"-C", st.dir}, args...)
	out, err := exec.CommandContext(ctx, "git", full...).CombinedOutput()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}
