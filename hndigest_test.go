package hndigest_test

import (
	"errors"
	"testing"
	"time"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := hndigest.Errorf(hndigest.ENOTFOUND, "item %d not found", 42)
	require.Error(t, err)
	assert.Equal(t, hndigest.ENOTFOUND, err.Code)
	assert.Equal(t, "item 42 not found", err.Message)
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", hndigest.ErrorCode(nil))
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := hndigest.Errorf(hndigest.EINVALID, "bad input")
		assert.Equal(t, hndigest.EINVALID, hndigest.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := hndigest.Errorf(hndigest.EUNAVAILABLE, "upstream down")
		assert.Equal(t, hndigest.EUNAVAILABLE, hndigest.ErrorCode(wrap(err)))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, hndigest.EINTERNAL, hndigest.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", hndigest.ErrorMessage(nil))
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := hndigest.Errorf(hndigest.ENOTFOUND, "post %q not found", "abc")
		assert.Equal(t, `post "abc" not found`, hndigest.ErrorMessage(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", hndigest.ErrorMessage(errors.New("boom")))
	})
}

func TestPostValidate(t *testing.T) {
	t.Parallel()

	valid := func() *hndigest.Post {
		return &hndigest.Post{
			ID:          "45000001",
			Title:       "A story",
			Author:      "pg",
			Points:      100,
			NumComments: 12,
			CreatedAt:   time.Date(2026, 8, 22, 10, 0, 0, 0, time.UTC),
		}
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		mutations := map[string]func(p *hndigest.Post){
			"ID":        func(p *hndigest.Post) { p.ID = "" },
			"Title":     func(p *hndigest.Post) { p.Title = "" },
			"Author":    func(p *hndigest.Post) { p.Author = "" },
			"CreatedAt": func(p *hndigest.Post) { p.CreatedAt = time.Time{} },
		}
		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				p := valid()
				mutate(p)
				err := p.Validate()
				assert.Equal(t, hndigest.EINVALID, hndigest.ErrorCode(err))
			})
		}
	})

	t.Run("negative counters", func(t *testing.T) {
		t.Parallel()
		p := valid()
		p.Points = -1
		assert.Equal(t, hndigest.EINVALID, hndigest.ErrorCode(p.Validate()))
	})
}

func TestChainSanitizers(t *testing.T) {
	t.Parallel()

	first := sanitizeFunc(func(fragment, _ string) (string, error) {
		return fragment + "+a", nil
	})
	second := sanitizeFunc(func(fragment, _ string) (string, error) {
		return fragment + "+b", nil
	})

	chain := hndigest.ChainSanitizers(first, second)
	out, err := chain.Sanitize("x", "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "x+a+b", out)
}

func TestChainSanitizers_Error(t *testing.T) {
	t.Parallel()

	boom := sanitizeFunc(func(_, _ string) (string, error) {
		return "", hndigest.Errorf(hndigest.EINVALID, "bad fragment")
	})
	after := sanitizeFunc(func(fragment, _ string) (string, error) {
		t.Fatal("must not be reached")
		return fragment, nil
	})

	chain := hndigest.ChainSanitizers(boom, after)
	_, err := chain.Sanitize("x", "https://example.com")
	assert.Equal(t, hndigest.EINVALID, hndigest.ErrorCode(err))
}

type sanitizeFunc func(fragment, baseURL string) (string, error)

func (f sanitizeFunc) Sanitize(fragment, baseURL string) (string, error) {
	return f(fragment, baseURL)
}

func wrap(err error) error {
	return errors.Join(errors.New("outer"), err)
}
