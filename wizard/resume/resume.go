package resume

import "time"

// UserInfo carries the applicant's personal attributes as flattened strings,
// the shape the generation prompt embeds directly.
type UserInfo struct {
	Strengths  string `json:"strengths"`
	Weaknesses string `json:"weaknesses"`
	Experience string `json:"experience"`
	Skills     string `json:"skills"`
	Education  string `json:"education"`
	Awards     string `json:"awards"`
}

// IsEmpty reports whether no attribute was provided at all
func (u UserInfo) IsEmpty() bool {
	return u.Strengths == "" && u.Weaknesses == "" && u.Experience == "" &&
		u.Skills == "" && u.Education == "" && u.Awards == ""
}

// GeneratedResume is the finished document. Content is either the
// "## question\n\nanswer" reconstruction of the provider payload or, when
// that payload does not parse, the raw provider text.
type GeneratedResume struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generatedAt"`
}
