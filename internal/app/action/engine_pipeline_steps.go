package action

import (
	"context"
	"strings"

	"furrow/internal/domain/dice"
	"furrow/internal/domain/farmer"
	"furrow/internal/domain/world"
)

func (u UseCase) ValidateRequest(req Request) (ActionContext, error) {
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.Type = ActionType(strings.ToLower(strings.TrimSpace(string(req.Type))))
	req.Direction = strings.ToLower(strings.TrimSpace(req.Direction))
	req.Item = strings.TrimSpace(req.Item)
	req.Tool = strings.TrimSpace(req.Tool)

	if req.SessionID == "" || !isSupportedActionType(req.Type) {
		return ActionContext{}, ErrInvalidRequest
	}
	if !hasValidActionParams(req) {
		return ActionContext{}, ErrInvalidActionParams
	}
	ac := ActionContext{In: ActionInput{Req: req, SessionID: req.SessionID}}
	if req.Direction != "" {
		ac.In.Direction, _ = world.ParseDirection(req.Direction)
	}
	return ac, nil
}

func (u UseCase) LoadSession(ctx context.Context, ac *ActionContext) error {
	s, err := u.Sessions.Get(ctx, ac.In.SessionID)
	if err != nil {
		return err
	}
	if s.Rand == nil {
		s.Rand = dice.New(s.Seed ^ s.Version)
	}
	ac.View.Session = s
	ac.View.Version = s.Version
	return nil
}

func (u UseCase) ResolveSpec(ac *ActionContext) error {
	spec, ok := actionRegistry()[ac.In.Req.Type]
	if !ok {
		return ErrInvalidRequest
	}
	ac.View.Spec = spec
	return nil
}

func (u UseCase) RunPrechecks(ctx context.Context, ac *ActionContext) error {
	s := ac.View.Session
	if ac.View.Spec.NeedsInput && !s.AcceptsInput() {
		return ErrInputBlocked
	}
	if ac.View.Spec.Panel != farmer.PanelNone && s.OpenPanel != ac.View.Spec.Panel {
		return &PanelClosedError{Want: ac.View.Spec.Panel, Open: s.OpenPanel}
	}
	if ac.View.Spec.Handler != nil {
		return ac.View.Spec.Handler.Precheck(ctx, u, ac)
	}
	return nil
}

func (u UseCase) ExecuteAction(ctx context.Context, ac *ActionContext) error {
	ac.Plan.ResultCode = farmer.ResultOK
	if ac.View.Spec.Handler == nil {
		return nil
	}
	return ac.View.Spec.Handler.Execute(ctx, u, ac)
}

// PersistAndRespond writes the journal and the archive before the session.
// The memory store cannot undo a session save, so the save goes last.
func (u UseCase) PersistAndRespond(ctx context.Context, ac *ActionContext) error {
	s := ac.View.Session
	s.Touch(ac.In.NowAt)

	for i := range ac.Plan.EventsToAppend {
		evt := &ac.Plan.EventsToAppend[i]
		evt.OccurredAt = ac.In.NowAt
		if evt.Payload == nil {
			evt.Payload = map[string]any{}
		}
		evt.Payload["session_id"] = ac.In.SessionID
		evt.Payload["action"] = string(ac.In.Req.Type)
	}
	if len(ac.Plan.EventsToAppend) > 0 && u.EventRepo != nil {
		if err := u.EventRepo.Append(ctx, ac.In.SessionID, ac.Plan.EventsToAppend); err != nil {
			return err
		}
	}
	if ac.Plan.DayToArchive != nil && u.Archive != nil {
		if err := u.Archive.RecordDay(ctx, ac.In.SessionID, *ac.Plan.DayToArchive); err != nil {
			return err
		}
	}
	return u.Sessions.SaveWithVersion(ctx, s, ac.View.Version)
}

func (u UseCase) BuildResponse(ac *ActionContext) Response {
	out := ac.Tmp
	out.State = ac.View.Session.State()
	out.Events = ac.Plan.EventsToAppend
	if out.Events == nil {
		out.Events = []farmer.DomainEvent{}
	}
	out.ResultCode = ac.Plan.ResultCode
	return out
}

func hasValidActionParams(req Request) bool {
	validator, ok := actionParamValidators()[req.Type]
	if !ok {
		return true
	}
	return validator(req)
}
