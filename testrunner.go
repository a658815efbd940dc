package squares

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a headless script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected events and snapshots across frames of a
// HeadlessHost. Supported actions: move, path, leave, resize, wait,
// snapshot.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadScript parses a JSON script of the form {"steps": [...]}.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "move", "path", "leave", "resize", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has executed and the inject queue drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Err returns the first snapshot error, if any.
func (r *ScriptRunner) Err() error {
	return r.err
}

// Run steps the host until the script is done or maxFrames frames have run,
// returning the number of frames used.
func (r *ScriptRunner) Run(h *HeadlessHost, maxFrames int) (int, error) {
	frames := 0
	for !r.done && frames < maxFrames {
		r.step(h)
		h.Step()
		frames++
	}
	if r.err != nil {
		return frames, r.err
	}
	if !r.done {
		return frames, fmt.Errorf("script not finished after %d frames", maxFrames)
	}
	return frames, nil
}

// step advances the runner by one frame. Call it before HeadlessHost.Step.
func (r *ScriptRunner) step(h *HeadlessHost) {
	if r.done {
		return
	}
	// Let injected events drain before advancing.
	if h.Queued() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	if wait := st.apply(h); wait > 0 {
		r.waitCount = wait - 1 // this frame counts as one
	}
	if st.Action == "snapshot" {
		if err := h.Snapshot(st.Label); err != nil && r.err == nil {
			r.err = fmt.Errorf("snapshot %q: %w", st.Label, err)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && h.Queued() == 0 {
		r.done = true
	}
}

// apply queues the step's events on h and returns the frames it waits for.
// Snapshots are taken by the runner so their errors can be kept.
func (st scriptStep) apply(h *HeadlessHost) int {
	switch st.Action {
	case "move":
		h.InjectMove(st.X, st.Y)
	case "path":
		h.InjectPath(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "leave":
		h.InjectLeave()
	case "resize":
		h.InjectResize(st.Width, st.Height)
	case "wait":
		return st.Frames
	}
	return 0
}
