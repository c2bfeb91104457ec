package portfolio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rsharma/finboard/internal/models"
)

var (
	predictedGainPattern = regexp.MustCompile(`predictedGain:\s*([-\d.]+)`)
	predictedPctPattern  = regexp.MustCompile(`predictedPercentage:\s*([-\d.]+)`)
)

// buildForecastPrompt describes every holding and asks for exactly two
// numeric fields in a fixed format.
func buildForecastPrompt(assets []*models.Asset) string {
	var sb strings.Builder
	sb.WriteString("Given these assets:\n")

	for _, a := range assets {
		fmt.Fprintf(&sb, `
%s (%s):
- Current Value: %.2f
- Purchase Price: %.2f
- Quantity: %.2f
- Purchase Date: %s
`,
			a.Name,
			a.AssetType,
			a.CurrentValue,
			a.PurchasePrice,
			a.Quantity,
			a.PurchaseDate.Format("2006-01-02"),
		)
	}

	sb.WriteString(`
Based on historical market trends and current market conditions:
1. Calculate and predict the total gain/loss value
2. Calculate and predict the percentage gain/loss
3. Consider market volatility and asset type performance
4. Provide realistic predictions based on historical data

Return only the numerical predictions in this format:
predictedGain: [number]
predictedPercentage: [number]
`)

	return sb.String()
}

// ParseForecast extracts the predicted figures from the provider's free text.
// A missing or malformed field parses as 0 for that field only.
func ParseForecast(text string) models.Forecast {
	return models.Forecast{
		PredictedGain:       matchNumber(predictedGainPattern, text),
		PredictedPercentage: matchNumber(predictedPctPattern, text),
	}
}

func matchNumber(pattern *regexp.Regexp, text string) float64 {
	m := pattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}
