package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/sanjayvyas/portfolio/internal/models"
)

type stubFetcher struct {
	bodies map[string]string
	errs   map[string]error
	panics map[string]bool
}

func (f *stubFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if f.panics[path] {
		panic("boom: " + path)
	}
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	body, ok := f.bodies[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return []byte(body), nil
}

func fixedClock() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func titles(records []models.ProjectRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Title)
	}
	return out
}

func TestLoadProjectsAllSucceed(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := &stubFetcher{bodies: map[string]string{
		"projects/a.json": `{"title":"A","date":"2021-03-01","featured":true}`,
		"projects/b.json": `{"title":"B","date":"2024-11-20"}`,
		"projects/c.json": `{"title":"C","date":"2023-01-15","technologies":["Go"]}`,
	}}
	l := NewProjectLoader(f, []string{"projects/a.json", "projects/b.json", "projects/c.json"})

	records := l.Load(context.Background())

	require.Len(t, records, 3)
	assert.Equal(t, []string{"B", "C", "A"}, titles(records))
	for i := 1; i < len(records); i++ {
		assert.False(t, parseDate(records[i].Date).After(parseDate(records[i-1].Date)), "records must be non-ascending")
	}
}

func TestLoadProjectsSubsetFails(t *testing.T) {
	f := &stubFetcher{
		bodies: map[string]string{
			"ok-old.json":    `{"title":"Old","date":"2019-05-01"}`,
			"ok-new.json":    `{"title":"New","date":"2025-02-01"}`,
			"malformed.json": `{"title":`,
		},
		errs: map[string]error{
			"down.json": errors.New("connection refused"),
		},
	}
	paths := []string{"ok-old.json", "down.json", "malformed.json", "ok-new.json", "missing.json"}
	l := NewProjectLoader(f, paths)

	records := l.Load(context.Background())

	assert.Equal(t, []string{"New", "Old"}, titles(records))
}

func TestLoadProjectsAllFailReturnsEmpty(t *testing.T) {
	f := &stubFetcher{errs: map[string]error{
		"a.json": errors.New("500"),
		"b.json": errors.New("timeout"),
	}}
	l := NewProjectLoader(f, []string{"a.json", "b.json"})

	records := l.Load(context.Background())

	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestLoadProjectsAggregateFailureUsesFallback(t *testing.T) {
	f := &stubFetcher{
		bodies: map[string]string{"good.json": `{"title":"Good","date":"2030-01-01"}`},
		panics: map[string]bool{"bad.json": true},
	}
	l := NewProjectLoader(f, []string{"good.json", "bad.json"})

	records := l.Load(context.Background())

	require.Len(t, records, 6)
	assert.Equal(t, FallbackProjects(), records)
	assert.Equal(t, "E-Commerce Platform", records[0].Title)
	assert.Equal(t, "Chat Application", records[5].Title)
}

func TestLoadFallbackIsCopied(t *testing.T) {
	f := &stubFetcher{panics: map[string]bool{"x.json": true}}
	l := NewProjectLoader(f, []string{"x.json"})

	first := l.Load(context.Background())
	first[0].Title = "changed"

	second := l.Load(context.Background())
	assert.Equal(t, "E-Commerce Platform", second[0].Title)
}

func TestLoadExperienceTreatsPresentAsNow(t *testing.T) {
	f := &stubFetcher{bodies: map[string]string{
		"exp/a.json": `{"title":"Engineer","company":"Acme","date":"Jan 2018 - Dec 2020"}`,
		"exp/b.json": `{"title":"Lead","company":"Initech","date":"Mar 2023 - Present"}`,
		"exp/c.json": `{"title":"Senior","company":"Globex","date":"Jan 2021 – Feb 2023"}`,
		"exp/d.json": `{"title":"Intern","company":"Hooli","date":"sometime"}`,
	}}
	l := NewExperienceLoader(f, []string{"exp/a.json", "exp/b.json", "exp/c.json", "exp/d.json"},
		WithClock[models.ExperienceRecord](fixedClock))

	records := l.Load(context.Background())

	require.Len(t, records, 4)
	var companies []string
	for _, r := range records {
		companies = append(companies, r.Company)
	}
	assert.Equal(t, []string{"Initech", "Globex", "Acme", "Hooli"}, companies)
}

func TestLoadExperienceAggregateFailureIsEmpty(t *testing.T) {
	f := &stubFetcher{panics: map[string]bool{"exp.json": true}}
	l := NewExperienceLoader(f, []string{"exp.json"})

	assert.Empty(t, l.Load(context.Background()))
}

func TestLoadNoPaths(t *testing.T) {
	l := NewProjectLoader(&stubFetcher{}, nil)
	records := l.Load(context.Background())
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-02-29", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{"2023-07", time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{"Aug 2016", time.Date(2016, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{"September 2019", time.Date(2019, time.September, 1, 0, 0, 0, 0, time.UTC)},
		{" 2020 ", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"not a date", time.Time{}},
		{"", time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.True(t, tt.want.Equal(parseDate(tt.in)), "parseDate(%q) = %v", tt.in, parseDate(tt.in))
		})
	}
}

func TestRangeEnd(t *testing.T) {
	assert.Equal(t, "Present", rangeEnd("Aug 2016 - Present"))
	assert.Equal(t, "May 2023", rangeEnd("Sept 2019 to May 2023"))
	assert.Equal(t, "2022", rangeEnd("2020 — 2022"))
	assert.Equal(t, "2021-06", rangeEnd("2021-06"))
}

func TestFSFetcher(t *testing.T) {
	fsys := fstest.MapFS{
		"data/projects/a.json": &fstest.MapFile{Data: []byte(`{"title":"A"}`)},
	}
	f := NewFSFetcher(fsys)

	data, err := f.Fetch(context.Background(), "/data/projects/a.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"A"}`, string(data))

	_, err = f.Fetch(context.Background(), "data/projects/missing.json")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Fetch(ctx, "data/projects/a.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/site/data/ok.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"title":"Remote","date":"2024-01-01"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f, err := NewHTTPFetcher(srv.URL+"/site", srv.Client())
	require.NoError(t, err)

	data, err := f.Fetch(context.Background(), "data/ok.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Remote")

	_, err = f.Fetch(context.Background(), "data/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	l := NewProjectLoader(f, []string{"data/ok.json", "data/missing.json"})
	records := l.Load(context.Background())
	assert.Equal(t, []string{"Remote"}, titles(records))
}
