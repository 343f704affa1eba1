package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/Astemirdum/library-engine/pkg/auth"
)

type Book struct {
	ID            int     `json:"id" db:"id"`
	Title         string  `json:"title" db:"title"`
	Authors       string  `json:"authors" db:"authors"`
	AverageRating float64 `json:"averageRating" db:"average_rating"`
	LanguageCode  string  `json:"languageCode" db:"language_code"`
	RatingsCount  int     `json:"ratingsCount" db:"ratings_count"`
	Publisher     string  `json:"publisher" db:"publisher"`
}

type SearchField string

const (
	SearchByAuthors       SearchField = "authors"
	SearchByPublisher     SearchField = "publisher"
	SearchByAverageRating SearchField = "average_rating"
)

func (f SearchField) Valid() bool {
	switch f {
	case SearchByAuthors, SearchByPublisher, SearchByAverageRating:
		return true
	}
	return false
}

type ReloadResult struct {
	Loaded  int `json:"loaded"`
	Skipped int `json:"skipped"`
}

// Account is a student or staff member. For staff ID holds the employee id.
type Account struct {
	ID           string    `json:"id" db:"account_id"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         auth.Role `json:"role" db:"-"`
}

func (a Account) Session() auth.Session {
	return auth.Session{Role: a.Role, ID: a.ID, Name: a.Name}
}

type RegisterRequest struct {
	ID       string `json:"id" validate:"required,max=64"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Student struct {
	StudentID string `json:"studentId" db:"student_id"`
	Name      string `json:"name" db:"name"`
}

type Loan struct {
	LoanID     int    `json:"loanId" db:"loan_id"`
	StudentID  string `json:"studentId" db:"student_id"`
	BookID     int    `json:"bookId" db:"book_id"`
	LoanDate   Date   `json:"loanDate" db:"loan_date"`
	ReturnDate *Date  `json:"returnDate" db:"return_date"`
}

func (l Loan) Outstanding() bool {
	return l.ReturnDate == nil
}

// LoanView is a loan joined with its book. StudentID is only selected for the
// staff listing and omitted from a student's own.
type LoanView struct {
	LoanID     int    `json:"loanId" db:"loan_id"`
	Title      string `json:"title" db:"title"`
	Authors    string `json:"authors" db:"authors"`
	LoanDate   Date   `json:"loanDate" db:"loan_date"`
	ReturnDate *Date  `json:"returnDate" db:"return_date"`
	StudentID  string `json:"studentId,omitempty" db:"student_id"`
}

type ReturnView struct {
	LoanID      int    `json:"loanId" db:"loan_id"`
	StudentID   string `json:"studentId" db:"student_id"`
	StudentName string `json:"studentName" db:"student_name"`
	BookID      int    `json:"bookId" db:"book_id"`
	Title       string `json:"title" db:"title"`
	LoanDate    Date   `json:"loanDate" db:"loan_date"`
	ReturnDate  Date   `json:"returnDate" db:"return_date"`
}

type IssueRequest struct {
	BookID int `json:"bookId" validate:"required,min=1"`
}

type IssueResponse struct {
	LoanID int    `json:"loanId"`
	BookID int    `json:"bookId"`
	Title  string `json:"title"`
}

type Status string

const (
	StatusAvailable Status = "Available"
	StatusLoanedOut Status = "Loaned Out"
)

type BookAvailability struct {
	BookID  int    `json:"bookId" db:"id"`
	Title   string `json:"title" db:"title"`
	Authors string `json:"authors" db:"authors"`
	Status  Status `json:"status" db:"status"`
}

type DateCount struct {
	Date  Date `json:"date" db:"day"`
	Count int  `json:"count" db:"cnt"`
}

type Activity struct {
	Date     Date `json:"date"`
	Loaned   int  `json:"loaned"`
	Returned int  `json:"returned"`
}

// Date is a calendar day. It is stored as DATE in postgres and as
// YYYY-MM-DD text in sqlite.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	if len(s) > len(time.DateOnly) {
		s = s[:len(time.DateOnly)]
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	}
	return fmt.Errorf("model.Date: cannot scan %T", src)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	parsed, err := ParseDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
