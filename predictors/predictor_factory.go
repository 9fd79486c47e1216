package predictors

import (
	"fmt"
	"strings"

	"gitlab.com/aoterocom/AOBaccarat/interfaces"
)

var DefaultModels = []string{"patternAI", "deepBaccarat"}

func PredictorFactory(predictorName string) (interfaces.Predictor, error) {

	switch strings.TrimSpace(predictorName) {
	case "patternAI", PatternAIName:
		patternAIPredictor := NewPatternAIPredictor()
		return interfaces.Predictor(patternAIPredictor), nil
	case "deepBaccarat", DeepBaccaratName:
		deepBaccaratPredictor := NewDeepBaccaratPredictor()
		return interfaces.Predictor(deepBaccaratPredictor), nil
	default:
		return nil, fmt.Errorf("%s is not a known model", predictorName)
	}

}

// PredictorsFactory builds every named predictor, failing on the first unknown name
func PredictorsFactory(predictorNames []string) ([]interfaces.Predictor, error) {
	var predictors []interfaces.Predictor
	for _, name := range predictorNames {
		if strings.TrimSpace(name) == "" {
			continue
		}
		predictor, err := PredictorFactory(name)
		if err != nil {
			return nil, err
		}
		predictors = append(predictors, predictor)
	}
	if len(predictors) == 0 {
		return nil, fmt.Errorf("no models configured")
	}
	return predictors, nil
}
