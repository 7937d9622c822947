package converter

import (
	"number-converter/internal/logger"
)

const component = "Converter"

// Result is the outcome of one successful conversion request.
type Result struct {
	Mode    Mode
	Input   string
	Output  string
	Display string
}

// Service runs validate, convert and format for a single request.
type Service struct {
	formatter *Formatter
	logger    logger.Logger
}

func NewService(formatter *Formatter, log logger.Logger) *Service {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Service{formatter: formatter, logger: log}
}

// Convert validates input for mode and, if it passes, converts and
// formats it. Validation failures are returned as *ValidationError.
func (s *Service) Convert(mode Mode, input string) (Result, error) {
	if err := Validate(mode, input); err != nil {
		s.logger.Debug(component, "input rejected", map[string]interface{}{
			"mode":  mode.String(),
			"input": input,
			"error": err.Error(),
		})
		return Result{}, err
	}

	output, err := Convert(mode, input)
	if err != nil {
		s.logger.Error(component, err, map[string]interface{}{
			"mode":  mode.String(),
			"input": input,
		})
		return Result{}, err
	}

	result := Result{
		Mode:    mode,
		Input:   input,
		Output:  output,
		Display: s.formatter.Format(mode, input, output),
	}

	s.logger.Debug(component, "conversion complete", map[string]interface{}{
		"mode":   mode.String(),
		"input":  input,
		"output": output,
	})
	return result, nil
}
