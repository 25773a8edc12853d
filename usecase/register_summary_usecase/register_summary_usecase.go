package register_summary_usecase

import (
	"context"

	"marketbrief/domain"
	"marketbrief/port/summary_port"
	"marketbrief/utils/errors"
	"marketbrief/utils/logger"
)

// RegisterSummaryUsecase validates and persists one summary draft.
type RegisterSummaryUsecase struct {
	registerPort summary_port.RegisterSummaryPort
}

func NewRegisterSummaryUsecase(registerPort summary_port.RegisterSummaryPort) *RegisterSummaryUsecase {
	return &RegisterSummaryUsecase{registerPort: registerPort}
}

func (u *RegisterSummaryUsecase) Execute(ctx context.Context, draft domain.SummaryDraft) (int64, error) {
	if err := draft.Validate(); err != nil {
		return 0, errors.ValidationError("invalid summary draft", map[string]interface{}{
			"source_file": draft.SourceFile,
		})
	}

	id, err := u.registerPort.Execute(ctx, draft)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to register summary", "error", err, "source_file", draft.SourceFile)
		return 0, err
	}

	logger.Logger.InfoContext(ctx, "summary registered", "id", id, "source_file", draft.SourceFile)
	return id, nil
}
