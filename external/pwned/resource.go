package pwned

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/pwned-go/external/pwned/model"
)

// competitionPath builds {kind}s/{id}[/segment...].
func competitionPath(kind model.Kind, id int64, segments ...string) (string, error) {
	if !kind.Valid() {
		return "", &UnknownTypeError{Kind: string(kind)}
	}
	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, kind.Resource(), strconv.FormatInt(id, 10))
	parts = append(parts, segments...)
	return strings.Join(parts, "/"), nil
}

func leaguePath(id int64, segments ...string) string {
	path, _ := competitionPath(model.KindLeague, id, segments...)
	return path
}

const scoringModelsPath = "leagues/scoringmodels"

func scoringModelPath(segment string) string {
	return scoringModelsPath + "/" + url.PathEscape(segment)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
