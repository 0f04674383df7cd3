package v1handler

import (
	"context"
	"marketplace/internal/api/specs/v1specs"
	"marketplace/internal/moderation"
	"marketplace/pkg/domain"

	"github.com/google/uuid"
)

func ReportOutcomeToV1Specs(in *moderation.ReportOutcome) *v1specs.ReportOutcome {
	return &v1specs.ReportOutcome{
		IncidenceId:   uuid.UUID(in.IncidenceID),
		PublicationId: uuid.UUID(in.PublicationID),
		Status:        v1specs.IncidenceStatus(in.Status),
		Message:       in.Message,
		CreatedAt:     in.CreatedAt,
	}
}

func IncidencePageToV1Specs(in *moderation.IncidencePage) *v1specs.IncidencePage {
	items := make([]v1specs.IncidenceDetails, 0, len(in.Items))
	for _, inc := range in.Items {
		items = append(items, IncidenceDetailsToV1Specs(inc))
	}

	return &v1specs.IncidencePage{
		Items:  items,
		Number: int(in.Number),
		Size:   int(in.Size),
		Total:  in.Total,
	}
}

func IncidenceDetailsToV1Specs(in moderation.IncidenceDetails) v1specs.IncidenceDetails {
	out := v1specs.IncidenceDetails{
		ID:           uuid.UUID(in.ID),
		Status:       v1specs.IncidenceStatus(in.Status),
		AutoClosed:   in.AutoClosed,
		CreatedAt:    in.CreatedAt,
		LastReportAt: in.LastReportAt,
		Publication: v1specs.PublicationSummary{
			ID:          uuid.UUID(in.Publication.ID),
			Name:        in.Publication.Name,
			Description: in.Publication.Description,
			Status:      string(in.Publication.Status),
		},
		Reports: make([]v1specs.ReportDetails, 0, len(in.Reports)),
	}
	if in.Decision != "" {
		out.Decision = v1specs.NewOptDecision(v1specs.Decision(in.Decision))
	}
	if in.ModeratorID != nil {
		out.ModeratorId = v1specs.NewOptUUID(uuid.UUID(*in.ModeratorID))
	}
	for _, r := range in.Reports {
		out.Reports = append(out.Reports, v1specs.ReportDetails{
			ID:        uuid.UUID(r.ID),
			Reason:    v1specs.ReportReason(r.Reason),
			Comment:   r.Comment,
			Source:    v1specs.ReportSource(r.Source),
			CreatedAt: r.CreatedAt,
			Reporter: v1specs.ReporterSummary{
				ID:        uuid.UUID(r.Reporter.ID),
				FirstName: r.Reporter.FirstName,
				LastName:  r.Reporter.LastName,
				Gender:    r.Reporter.Gender,
			},
		})
	}

	return out
}

func (h *Handler) ReportByUser(ctx context.Context, req *v1specs.ReportRequest) (*v1specs.ReportOutcome, error) {
	res, err := h.Moderation.ReportByUser(ctx, moderation.UserReport{
		PublicationID: domain.PublicationID(req.PublicationId),
		ReporterID:    GetUserIDFromContext(ctx),
		Reason:        domain.ReportReason(req.Reason),
		Comment:       req.Comment.Or(""),
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ReportOutcomeToV1Specs(res), nil
}

func (h *Handler) ReportBySystem(ctx context.Context, req *v1specs.ReportRequest) (*v1specs.ReportOutcome, error) {
	res, err := h.Moderation.ReportBySystem(ctx, moderation.SystemReport{
		PublicationID: domain.PublicationID(req.PublicationId),
		Reason:        domain.ReportReason(req.Reason),
		Comment:       req.Comment.Or(""),
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ReportOutcomeToV1Specs(res), nil
}

func (h *Handler) UnreviewedIncidences(
	ctx context.Context,
	params v1specs.UnreviewedIncidencesParams) (*v1specs.IncidencePage, error) {
	res, err := h.Moderation.UnreviewedIncidences(ctx, page(params.Page, params.Size))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return IncidencePageToV1Specs(res), nil
}

func (h *Handler) ReviewedIncidences(
	ctx context.Context,
	params v1specs.ReviewedIncidencesParams) (*v1specs.IncidencePage, error) {
	res, err := h.Moderation.ReviewedIncidences(ctx, GetUserIDFromContext(ctx), page(params.Page, params.Size))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return IncidencePageToV1Specs(res), nil
}

func (h *Handler) ClaimIncidence(ctx context.Context, params v1specs.ClaimIncidenceParams) (*v1specs.ClaimOutcome, error) {
	res, err := h.Moderation.Claim(ctx, domain.IncidenceID(params.ID), GetUserIDFromContext(ctx))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.ClaimOutcome{
		IncidenceId:   uuid.UUID(res.IncidenceID),
		ModeratorId:   uuid.UUID(res.ModeratorID),
		ModeratorName: res.ModeratorName,
		Message:       res.Message,
	}, nil
}

func (h *Handler) MakeDecision(
	ctx context.Context,
	req *v1specs.DecisionRequest,
	params v1specs.MakeDecisionParams) (*v1specs.DecisionOutcome, error) {
	res, err := h.Moderation.MakeDecision(ctx,
		domain.IncidenceID(params.ID),
		GetUserIDFromContext(ctx),
		domain.Decision(req.Decision))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.DecisionOutcome{
		IncidenceId: uuid.UUID(res.IncidenceID),
		Decision:    v1specs.Decision(res.Decision),
		Status:      v1specs.IncidenceStatus(res.Status),
		DecidedAt:   res.DecidedAt,
		Message:     res.Message,
	}, nil
}

func (h *Handler) AppealIncidence(
	ctx context.Context,
	req *v1specs.AppealRequest,
	params v1specs.AppealIncidenceParams) (*v1specs.AppealOutcome, error) {
	res, err := h.Moderation.Appeal(ctx, domain.IncidenceID(params.ID), GetUserIDFromContext(ctx), req.Argument)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.AppealOutcome{
		IncidenceId: uuid.UUID(res.IncidenceID),
		Status:      v1specs.IncidenceStatus(res.Status),
		AppealedAt:  res.AppealedAt,
		Message:     res.Message,
	}, nil
}

func (h *Handler) RequestContentCheck(
	ctx context.Context,
	params v1specs.RequestContentCheckParams) (*v1specs.ContentCheckOutcome, error) {
	enqueued, err := h.Moderation.RequestContentCheck(ctx, domain.PublicationID(params.ID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.ContentCheckOutcome{
		PublicationId: params.ID,
		Enqueued:      enqueued,
	}, nil
}
