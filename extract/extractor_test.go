package extract_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/callscore"
	"github.com/fwojciec/callscore/extract"
	"github.com/fwojciec/callscore/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedDocument returns a mock document with the given fragments per page.
func pagedDocument(pages ...[]string) *mock.PagedDocument {
	return &mock.PagedDocument{
		NumPagesFn: func() int { return len(pages) },
		PageTextFn: func(_ context.Context, n int) ([]string, error) {
			return pages[n-1], nil
		},
	}
}

func opener(doc callscore.PagedDocument) *mock.PDFOpener {
	return &mock.PDFOpener{
		OpenFn: func([]byte) (callscore.PagedDocument, error) { return doc, nil },
	}
}

func TestExtractor_PlainText(t *testing.T) {
	t.Parallel()

	t.Run("returns text unchanged", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"Q3 revenue grew 12%...",
			"",
			"line one\r\nline two\n",
			"Umsatz stieg um 12 % — 利益は横ばい",
		}
		e := extract.NewExtractor(nil)

		for _, in := range inputs {
			text, err := e.Extract(context.Background(), &callscore.Document{
				Kind: callscore.KindPlainText, Name: "a.txt", Data: []byte(in),
			})

			require.NoError(t, err)
			assert.Equal(t, in, text)
		}
	})

	t.Run("strips UTF-8 byte order mark", func(t *testing.T) {
		t.Parallel()

		text, err := extract.DecodeText([]byte("\xef\xbb\xbfhello"))

		require.NoError(t, err)
		assert.Equal(t, "hello", text)
	})

	t.Run("decodes UTF-16 with byte order mark", func(t *testing.T) {
		t.Parallel()

		text, err := extract.DecodeText([]byte{0xff, 0xfe, 'h', 0, 'i', 0})

		require.NoError(t, err)
		assert.Equal(t, "hi", text)
	})

	t.Run("replaces invalid sequences", func(t *testing.T) {
		t.Parallel()

		text, err := extract.DecodeText([]byte("a\xffb"))

		require.NoError(t, err)
		assert.Equal(t, "a�b", text)
	})

	t.Run("never opens PDF for text kind", func(t *testing.T) {
		t.Parallel()

		e := extract.NewExtractor(&mock.PDFOpener{
			OpenFn: func([]byte) (callscore.PagedDocument, error) {
				t.Fatal("unexpected PDF open")
				return nil, nil
			},
		})

		_, err := e.Extract(context.Background(), &callscore.Document{Kind: callscore.KindPlainText, Name: "a.txt"})

		require.NoError(t, err)
	})
}

func TestExtractor_PDF(t *testing.T) {
	t.Parallel()

	t.Run("joins fragments with spaces and terminates pages with newline", func(t *testing.T) {
		t.Parallel()

		e := extract.NewExtractor(opener(pagedDocument(
			[]string{"Q3", "revenue", "grew"},
			[]string{"Margins", "held"},
		)))

		text, err := e.Extract(context.Background(), &callscore.Document{Kind: callscore.KindPDF, Name: "call.pdf"})

		require.NoError(t, err)
		assert.Equal(t, "Q3 revenue grew\nMargins held\n", text)
	})

	t.Run("emits one newline-terminated segment per page in order", func(t *testing.T) {
		t.Parallel()

		pages := [][]string{{"first"}, {}, {"third", "page"}, {""}}
		var requested []int
		doc := pagedDocument(pages...)
		inner := doc.PageTextFn
		doc.PageTextFn = func(ctx context.Context, n int) ([]string, error) {
			requested = append(requested, n)
			return inner(ctx, n)
		}

		text, err := extract.NewExtractor(opener(doc)).Extract(context.Background(),
			&callscore.Document{Kind: callscore.KindPDF, Name: "call.pdf"})

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, requested)
		assert.Equal(t, len(pages), strings.Count(text, "\n"))
		assert.True(t, strings.HasSuffix(text, "\n"))
		assert.Equal(t, []string{"first", "", "third page", "", ""}, strings.Split(text, "\n"))
	})

	t.Run("returns empty text for zero pages", func(t *testing.T) {
		t.Parallel()

		text, err := extract.NewExtractor(opener(pagedDocument())).Extract(context.Background(),
			&callscore.Document{Kind: callscore.KindPDF, Name: "empty.pdf"})

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("fails whole extraction when a page fails", func(t *testing.T) {
		t.Parallel()

		doc := &mock.PagedDocument{
			NumPagesFn: func() int { return 3 },
			PageTextFn: func(_ context.Context, n int) ([]string, error) {
				if n == 2 {
					return nil, errors.New("bad content stream")
				}
				return []string{"ok"}, nil
			},
		}

		text, err := extract.NewExtractor(opener(doc)).Extract(context.Background(),
			&callscore.Document{Kind: callscore.KindPDF, Name: "bad.pdf"})

		require.Error(t, err)
		assert.Empty(t, text)
		assert.Equal(t, callscore.EEXTRACT, callscore.ErrorCode(err))
		assert.Contains(t, callscore.ErrorMessage(err), "page 2")
		assert.Contains(t, callscore.ErrorMessage(err), "bad content stream")
	})

	t.Run("fails when document cannot be opened", func(t *testing.T) {
		t.Parallel()

		e := extract.NewExtractor(&mock.PDFOpener{
			OpenFn: func([]byte) (callscore.PagedDocument, error) {
				return nil, errors.New("malformed xref")
			},
		})

		_, err := e.Extract(context.Background(), &callscore.Document{Kind: callscore.KindPDF, Name: "bad.pdf"})

		require.Error(t, err)
		assert.Equal(t, callscore.EEXTRACT, callscore.ErrorCode(err))
		assert.Contains(t, callscore.ErrorMessage(err), "malformed xref")
	})

	t.Run("fails without a PDF opener", func(t *testing.T) {
		t.Parallel()

		_, err := extract.NewExtractor(nil).Extract(context.Background(),
			&callscore.Document{Kind: callscore.KindPDF, Name: "a.pdf"})

		assert.Equal(t, callscore.EEXTRACT, callscore.ErrorCode(err))
	})

	t.Run("stops between pages when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		doc := &mock.PagedDocument{
			NumPagesFn: func() int { return 2 },
			PageTextFn: func(context.Context, int) ([]string, error) {
				cancel()
				return []string{"x"}, nil
			},
		}

		_, err := extract.NewExtractor(opener(doc)).Extract(ctx,
			&callscore.Document{Kind: callscore.KindPDF, Name: "a.pdf"})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestExtractor_RejectsInvalidDocument(t *testing.T) {
	t.Parallel()

	e := extract.NewExtractor(nil)

	_, err := e.Extract(context.Background(), nil)
	assert.Equal(t, callscore.EINVALID, callscore.ErrorCode(err))

	_, err = e.Extract(context.Background(), &callscore.Document{Kind: callscore.KindPlainText})
	assert.Equal(t, callscore.EINVALID, callscore.ErrorCode(err))
}

func TestExtractor_Idempotent(t *testing.T) {
	t.Parallel()

	e := extract.NewExtractor(nil)
	doc := &callscore.Document{Kind: callscore.KindPlainText, Name: "a.txt", Data: []byte("same text")}

	first, err := e.Extract(context.Background(), doc)
	require.NoError(t, err)
	second, err := e.Extract(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
