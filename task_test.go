package sitegrab_test

import (
	"testing"

	"github.com/fwojciec/sitegrab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTask() *sitegrab.Task {
	return &sitegrab.Task{
		Seeds:   []string{"https://www.example.com/"},
		Domains: []string{"www.example.com"},
		Match:   sitegrab.MatchExtensions(".pdf"),
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete task", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validTask().Validate())
	})

	t.Run("requires seeds", func(t *testing.T) {
		t.Parallel()

		task := validTask()
		task.Seeds = nil

		err := task.Validate()
		require.Error(t, err)
		assert.Equal(t, sitegrab.EINVALID, sitegrab.ErrorCode(err))
	})

	t.Run("requires domains", func(t *testing.T) {
		t.Parallel()

		task := validTask()
		task.Domains = nil

		err := task.Validate()
		require.Error(t, err)
		assert.Equal(t, sitegrab.EINVALID, sitegrab.ErrorCode(err))
	})

	t.Run("requires a matcher", func(t *testing.T) {
		t.Parallel()

		task := validTask()
		task.Match = nil

		err := task.Validate()
		require.Error(t, err)
		assert.Equal(t, sitegrab.EINVALID, sitegrab.ErrorCode(err))
	})
}

func TestTaskAdmitsDomain(t *testing.T) {
	t.Parallel()

	task := &sitegrab.Task{Domains: []string{"a.example.com", "b.example.com"}}

	assert.True(t, task.AdmitsDomain("a.example.com"))
	assert.True(t, task.AdmitsDomain("b.example.com"))
	assert.False(t, task.AdmitsDomain("c.example.com"))
	assert.False(t, task.AdmitsDomain(""))
}

func TestTaskIgnored(t *testing.T) {
	t.Parallel()

	task := &sitegrab.Task{IgnorePaths: []string{"/search", "/login"}}

	assert.True(t, task.Ignored("/search/results"))
	assert.True(t, task.Ignored("/login"))
	assert.False(t, task.Ignored("/docs/search"))
}

func TestTaskInjectQuery(t *testing.T) {
	t.Parallel()

	t.Run("replaces the existing query", func(t *testing.T) {
		t.Parallel()

		task := &sitegrab.Task{QueryParams: []sitegrab.QueryParam{{Key: "lang", Value: "en"}}}

		got := task.InjectQuery("https://h/docs?lang=fr&theme=dark")

		assert.Equal(t, "https://h/docs?lang=en", got)
	})

	t.Run("preserves parameter order", func(t *testing.T) {
		t.Parallel()

		task := &sitegrab.Task{QueryParams: []sitegrab.QueryParam{
			{Key: "lang", Value: "en"},
			{Key: "version", Value: "2"},
		}}

		got := task.InjectQuery("https://h/docs")

		assert.Equal(t, "https://h/docs?lang=en&version=2", got)
	})

	t.Run("no-op without configured parameters", func(t *testing.T) {
		t.Parallel()

		task := &sitegrab.Task{}

		got := task.InjectQuery("https://h/docs?lang=fr")

		assert.Equal(t, "https://h/docs?lang=fr", got)
	})
}

func TestTaskNormalize(t *testing.T) {
	t.Parallel()

	t.Run("strips query and fragment by default", func(t *testing.T) {
		t.Parallel()

		task := &sitegrab.Task{}

		assert.Equal(t, "https://h/x", task.Normalize("https://h/x?lang=en#top"))
	})

	t.Run("honors keep flags", func(t *testing.T) {
		t.Parallel()

		task := &sitegrab.Task{KeepQuery: true, KeepFragment: true}

		assert.Equal(t, "https://h/x?lang=en#top", task.Normalize("https://h/x?lang=en#top"))
	})
}
