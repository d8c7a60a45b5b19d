package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/webprime/internal/store"
)

// Kind names one of the four editable record collections.
type Kind string

const (
	KindServices Kind = "services"
	KindPosts    Kind = "posts"
	KindProjects Kind = "projects"
	KindUgcAds   Kind = "ugc-ads"
)

// ParseKind maps a route parameter onto a Kind.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindServices, KindPosts, KindProjects, KindUgcAds:
		return Kind(raw), nil
	}
	return "", ErrUnknownKind
}

// EditorMode is the state of the single edit session.
type EditorMode string

const (
	ModeIdle     EditorMode = "idle"
	ModeCreating EditorMode = "creating"
	ModeEditing  EditorMode = "editing"
)

// Direction moves a record or nested entry one step in display order.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ParseDirection maps a request value onto a Direction.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(raw) {
	case DirectionUp, DirectionDown:
		return Direction(raw), nil
	}
	return "", fmt.Errorf("invalid direction %q", raw)
}

var (
	// ErrUnknownKind means the collection kind is not one of the four.
	ErrUnknownKind = errors.New("unknown collection kind")
	// ErrNoActiveSession means a buffer operation was called while idle.
	// This is a caller contract violation, not a user-facing condition.
	ErrNoActiveSession = errors.New("no active edit session")
	// ErrSessionActive means begin was called while a session is already
	// in progress. The caller must commit or discard first.
	ErrSessionActive = errors.New("an edit session is already in progress")
	// ErrRecordNotFound means the addressed record does not exist.
	ErrRecordNotFound = errors.New("record not found")
	// ErrKindMismatch means a patch targeted a different kind than the
	// active draft.
	ErrKindMismatch = errors.New("patch kind does not match active draft")
	// ErrIndexOutOfRange means a nested entry index is invalid.
	ErrIndexOutOfRange = errors.New("nested entry index out of range")
)

// EditorService is the single edit session over all four collections.
// At most one record is ever being edited at a time; a new session can
// only start from the idle state. Drafts are deep copies, so Discard is
// always a true no-op on the store.
type EditorService struct {
	mu    sync.Mutex
	store *store.Store

	mode     EditorMode
	kind     Kind
	recordID string
	// slugTouched latches once the slug field is patched directly;
	// after that, name edits stop re-deriving the slug for the rest of
	// the session.
	slugTouched bool

	service *store.Service
	post    *store.BlogPost
	project *store.Project
	ugcAd   *store.UgcAd

	now func() time.Time
}

// NewEditorService constructs an idle editor over the store.
func NewEditorService(st *store.Store) *EditorService {
	return &EditorService{
		store: st,
		mode:  ModeIdle,
		now:   time.Now,
	}
}

// EditorState is a snapshot of the session for the admin UI. Exactly one
// of the draft pointers is set while a session is active.
type EditorState struct {
	Mode     EditorMode     `json:"mode"`
	Kind     Kind           `json:"kind,omitempty"`
	RecordID string         `json:"recordId,omitempty"`
	Service  *store.Service `json:"service,omitempty"`
	Post     *store.BlogPost `json:"post,omitempty"`
	Project  *store.Project `json:"project,omitempty"`
	UgcAd    *store.UgcAd   `json:"ugcAd,omitempty"`
}

// State returns a deep copy of the current session.
func (e *EditorService) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *EditorService) stateLocked() EditorState {
	out := EditorState{Mode: e.mode, Kind: e.kind, RecordID: e.recordID}
	if e.service != nil {
		svc := e.service.Clone()
		out.Service = &svc
	}
	if e.post != nil {
		p := e.post.Clone()
		out.Post = &p
	}
	if e.project != nil {
		p := e.project.Clone()
		out.Project = &p
	}
	if e.ugcAd != nil {
		u := e.ugcAd.Clone()
		out.UgcAd = &u
	}
	return out
}

// BeginCreate opens a creating session with collection-specific defaults.
// The collection is untouched until Commit.
func (e *EditorService) BeginCreate(kind Kind) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode != ModeIdle {
		return EditorState{}, ErrSessionActive
	}

	switch kind {
	case KindServices:
		e.service = &store.Service{
			Icon:         store.IconLayout,
			Features:     []store.Feature{},
			Process:      []store.ProcessStep{},
			FAQs:         []store.FAQ{},
			PricingPlans: []store.PricingPlan{},
			Visibility:   store.VisibilityShow,
			SortOrder:    e.store.ServiceCount() + 1,
		}
	case KindPosts:
		e.post = &store.BlogPost{
			Date:       e.now().Format("Jan 2, 2006"),
			Status:     store.PostStatusDraft,
			Visibility: store.VisibilityShow,
		}
	case KindProjects:
		e.project = &store.Project{
			MediaType:  store.MediaImage,
			Visibility: store.VisibilityShow,
			Tags:       []string{},
		}
	case KindUgcAds:
		e.ugcAd = &store.UgcAd{
			Platform:   store.PlatformMeta,
			Status:     store.PostStatusDraft,
			Metrics:    store.AdMetrics{Views: "0", Roas: "0"},
			Visibility: store.VisibilityShow,
		}
	default:
		return EditorState{}, ErrUnknownKind
	}

	e.mode = ModeCreating
	e.kind = kind
	e.recordID = ""
	e.slugTouched = false
	return e.stateLocked(), nil
}

// BeginEdit opens an editing session over a deep copy of an existing
// record. The record must exist in its collection.
func (e *EditorService) BeginEdit(kind Kind, id string) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode != ModeIdle {
		return EditorState{}, ErrSessionActive
	}

	switch kind {
	case KindServices:
		svc, ok := e.store.ServiceByID(id)
		if !ok {
			return EditorState{}, ErrRecordNotFound
		}
		e.service = &svc
	case KindPosts:
		p, ok := e.store.BlogPostByID(id)
		if !ok {
			return EditorState{}, ErrRecordNotFound
		}
		e.post = &p
	case KindProjects:
		p, ok := e.store.ProjectByID(id)
		if !ok {
			return EditorState{}, ErrRecordNotFound
		}
		e.project = &p
	case KindUgcAds:
		u, ok := e.store.UgcAdByID(id)
		if !ok {
			return EditorState{}, ErrRecordNotFound
		}
		e.ugcAd = &u
	default:
		return EditorState{}, ErrUnknownKind
	}

	e.mode = ModeEditing
	e.kind = kind
	e.recordID = id
	e.slugTouched = false
	return e.stateLocked(), nil
}

// Commit writes the buffer back to its collection and ends the session.
// In creating mode a fresh unique id is assigned first. Returns the id of
// the committed record.
func (e *EditorService) Commit() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == ModeIdle {
		return "", ErrNoActiveSession
	}

	var id string
	switch e.kind {
	case KindServices:
		if e.mode == ModeCreating {
			e.service.ID = e.newRecordID("service")
			e.store.InsertService(*e.service)
		} else {
			e.service.ID = e.recordID
			if !e.store.ReplaceService(*e.service) {
				return "", ErrRecordNotFound
			}
		}
		id = e.service.ID
	case KindPosts:
		if e.mode == ModeCreating {
			e.post.ID = e.newRecordID("post")
			e.store.PrependBlogPost(*e.post)
		} else {
			e.post.ID = e.recordID
			if !e.store.ReplaceBlogPost(*e.post) {
				return "", ErrRecordNotFound
			}
		}
		id = e.post.ID
	case KindProjects:
		if e.mode == ModeCreating {
			e.project.ID = e.newRecordID("project")
			e.store.AppendProject(*e.project)
		} else {
			e.project.ID = e.recordID
			if !e.store.ReplaceProject(*e.project) {
				return "", ErrRecordNotFound
			}
		}
		id = e.project.ID
	case KindUgcAds:
		if e.mode == ModeCreating {
			e.ugcAd.ID = e.newRecordID("ugc")
			e.store.AppendUgcAd(*e.ugcAd)
		} else {
			e.ugcAd.ID = e.recordID
			if !e.store.ReplaceUgcAd(*e.ugcAd) {
				return "", ErrRecordNotFound
			}
		}
		id = e.ugcAd.ID
	}

	e.resetLocked()
	return id, nil
}

// Discard ends the session without touching the collection. Calling it
// while idle is a harmless no-op.
func (e *EditorService) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

func (e *EditorService) resetLocked() {
	e.mode = ModeIdle
	e.kind = ""
	e.recordID = ""
	e.slugTouched = false
	e.service = nil
	e.post = nil
	e.project = nil
	e.ugcAd = nil
}

// newRecordID builds a time-based id and bumps it past any collision with
// an existing record in the store.
func (e *EditorService) newRecordID(prefix string) string {
	base := e.now().UnixMilli()
	for {
		id := fmt.Sprintf("%s-%d", prefix, base)
		if !e.store.HasID(id) {
			return id
		}
		base++
	}
}
