package salary

import "go.uber.org/zap"

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Preview(annualCTC float64) (BreakdownResponse, error)
}

type service struct {
	logger *zap.Logger
}

func NewService(logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{logger: l}
}

// Preview is what the offer form shows while the recruiter types a CTC.
// The income tax figure is informational and is not subtracted from take-home.
func (s *service) Preview(annualCTC float64) (BreakdownResponse, error) {
	b, err := Calculate(annualCTC)
	if err != nil {
		s.logger.Debug("salary preview rejected", zap.Float64("annual_ctc", annualCTC), zap.Error(err))
		return BreakdownResponse{}, err
	}

	tax, err := EstimateIncomeTax(b.TotalA.Annual)
	if err != nil {
		return BreakdownResponse{}, err
	}

	if len(b.Warnings) > 0 {
		s.logger.Warn("salary breakdown has warnings",
			zap.Int64("annual_ctc", b.AnnualCTC),
			zap.Strings("warnings", b.Warnings),
		)
	}

	return BreakdownResponse{Breakdown: b, TaxEstimate: tax}, nil
}
