package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-engine/library/internal/errs"
	"github.com/Astemirdum/library-engine/library/internal/model"
)

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		wantTitles  []string
		wantSkipped int
		wantErr     error
	}{
		{
			name: "three valid and one malformed",
			src: "title,authors,average_rating,language_code,ratings_count,publisher\n" +
				"Dune,Frank Herbert,4.25,eng,1000,Ace\n" +
				"Emma,Jane Austen,4.01,eng,500,Penguin\n" +
				"Ulysses,James Joyce,3.73,eng,12,Vintage\n" +
				"Broken,Nobody,4.0,eng\n",
			wantTitles:  []string{"Dune", "Emma", "Ulysses"},
			wantSkipped: 1,
		},
		{
			name: "header with padding, bom and extra columns",
			src: "\ufeffbookID, Title ,authors,average_rating,isbn,language_code,  num_pages,ratings_count,publisher\n" +
				"7,\"Dune, Messiah\",Frank Herbert,3.9,x,eng,256,10,Ace\n",
			wantTitles: []string{"Dune, Messiah"},
		},
		{
			name: "bad numbers and empty title are skipped",
			src: "title,authors,average_rating,language_code,ratings_count,publisher\n" +
				"A,x,four,eng,1,p\n" +
				"B,x,4.0,eng,-3,p\n" +
				" ,x,4.0,eng,3,p\n" +
				"C,x,4.0,eng,3,p\n",
			wantTitles:  []string{"C"},
			wantSkipped: 3,
		},
		{
			name: "non-finite ratings are skipped",
			src: "title,authors,average_rating,language_code,ratings_count,publisher\n" +
				"A,x,4.1,eng,1,p\n" +
				"B,x,NaN,eng,1,p\n" +
				"C,x,3.9,eng,1,p\n" +
				"D,x,+Inf,eng,1,p\n" +
				"E,x,-inf,eng,1,p\n",
			wantTitles:  []string{"A", "C"},
			wantSkipped: 3,
		},
		{
			name:       "header only",
			src:        "title,authors,average_rating,language_code,ratings_count,publisher\n",
			wantTitles: []string{},
		},
		{
			name:    "empty source",
			src:     "",
			wantErr: errs.ErrMalformedSource,
		},
		{
			name:    "missing column",
			src:     "title,authors,average_rating,language_code,publisher\nDune,Frank Herbert,4.25,eng,Ace\n",
			wantErr: errs.ErrMalformedSource,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, skipped, err := ParseCatalog(strings.NewReader(tt.src))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantSkipped, skipped)
			titles := make([]string, 0, len(books))
			for _, b := range books {
				titles = append(titles, b.Title)
			}
			require.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestParseCatalog_Fields(t *testing.T) {
	src := "title,authors,average_rating,language_code,ratings_count,publisher\n" +
		"Dune,Frank Herbert,4.25,eng,1000,Ace Books\n"
	books, skipped, err := ParseCatalog(strings.NewReader(src))
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Equal(t, []model.Book{{
		Title:         "Dune",
		Authors:       "Frank Herbert",
		AverageRating: 4.25,
		LanguageCode:  "eng",
		RatingsCount:  1000,
		Publisher:     "Ace Books",
	}}, books)
}

func TestMergeActivity(t *testing.T) {
	d := func(s string) model.Date {
		v, err := model.ParseDate(s)
		require.NoError(t, err)
		return v
	}
	loans := []model.DateCount{{Date: d("2024-01-01"), Count: 2}, {Date: d("2024-01-03"), Count: 1}}
	returns := []model.DateCount{{Date: d("2024-01-02"), Count: 1}, {Date: d("2024-01-03"), Count: 4}}

	require.Equal(t, []model.Activity{
		{Date: d("2024-01-01"), Loaned: 2},
		{Date: d("2024-01-02"), Returned: 1},
		{Date: d("2024-01-03"), Loaned: 1, Returned: 4},
	}, mergeActivity(loans, returns))
	require.Empty(t, mergeActivity(nil, nil))
}
