package inmemory

import (
	"sync"

	"furrow/internal/domain/farmer"
)

type Snapshot struct {
	ActionTotal    uint64                       `json:"action_total"`
	ActionSuccess  uint64                       `json:"action_success"`
	ActionConflict uint64                       `json:"action_conflict"`
	ActionFailure  uint64                       `json:"action_failure"`
	ByResultCode   map[string]uint64            `json:"by_result_code"`
	ByAction       map[string]map[string]uint64 `json:"by_action"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	conflict uint64
	failure  uint64
	byResult map[string]uint64
	byAction map[string]map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byResult: map[string]uint64{},
		byAction: map[string]map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(action string, resultCode farmer.ResultCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byResult[string(resultCode)]++
	perAction, ok := r.byAction[action]
	if !ok {
		perAction = map[string]uint64{}
		r.byAction[action] = perAction
	}
	perAction[string(resultCode)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSuccess:  r.success,
		ActionConflict: r.conflict,
		ActionFailure:  r.failure,
		ActionTotal:    r.success + r.conflict + r.failure,
		ByResultCode:   make(map[string]uint64, len(r.byResult)),
		ByAction:       make(map[string]map[string]uint64, len(r.byAction)),
	}
	for k, v := range r.byResult {
		out.ByResultCode[k] = v
	}
	for action, codes := range r.byAction {
		perAction := make(map[string]uint64, len(codes))
		for k, v := range codes {
			perAction[k] = v
		}
		out.ByAction[action] = perAction
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
