package report

import (
	"strings"

	"github.com/storeline/audit-backend/internal/entity"
	"github.com/storeline/audit-backend/internal/pkg/sanitize"
)

// collectImageURLs applies the image-source extraction rules to a
// question in their fixed priority order:
//
//	answer.image_url, answer.photo_url, question.image_url,
//	answer.images[], answer.photos[]
//
// and unions the candidates into one ordered set, de-duplicated by
// exact URL string.
func collectImageURLs(q entity.QuestionRequest) []string {
	candidates := make([]string, 0, 4)
	if q.Answer != nil {
		candidates = append(candidates, q.Answer.ImageURL, q.Answer.PhotoURL)
	}
	candidates = append(candidates, q.ImageURL)
	if q.Answer != nil {
		candidates = append(candidates, q.Answer.Images...)
		candidates = append(candidates, q.Answer.Photos...)
	}
	return dedupeURLs(candidates)
}

func dedupeURLs(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// storagePathToken turns an audit id into a safe, non-slash storage
// path segment.
func storagePathToken(id string) string {
	token := sanitize.String(id)
	replacer := strings.NewReplacer("/", "_", "\\", "_", " ", "_", "?", "_", "#", "_")
	return strings.Trim(replacer.Replace(token), "_")
}
