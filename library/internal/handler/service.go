package handler

import (
	"context"
	"io"

	"github.com/Astemirdum/library-engine/library/internal/model"
	"github.com/Astemirdum/library-engine/library/internal/service"
	"github.com/Astemirdum/library-engine/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	RegisterStudent(ctx context.Context, req model.RegisterRequest) error
	RegisterStaff(ctx context.Context, req model.RegisterRequest) error
	AuthenticateStudent(ctx context.Context, req model.LoginRequest) (model.Account, error)
	AuthenticateStaff(ctx context.Context, req model.LoginRequest) (model.Account, error)
	ListStudents(ctx context.Context, sess auth.Session) ([]model.Student, error)

	ReloadCatalog(ctx context.Context, sess auth.Session, src io.Reader) (model.ReloadResult, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	SearchBooks(ctx context.Context, keyword string, field model.SearchField) ([]model.Book, error)
	PopularityRecommendations(ctx context.Context, n int) ([]model.Book, error)
	RandomRecommendations(ctx context.Context, sess auth.Session, n int) ([]model.Book, error)
	Availability(ctx context.Context) ([]model.BookAvailability, error)

	IssueBook(ctx context.Context, sess auth.Session, bookID int) (model.IssueResponse, error)
	ReturnLoan(ctx context.Context, sess auth.Session, loanID int) error
	ListLoans(ctx context.Context, sess auth.Session) ([]model.LoanView, error)
	ListReturns(ctx context.Context, sess auth.Session) ([]model.ReturnView, error)

	LoansByDate(ctx context.Context, sess auth.Session) ([]model.DateCount, error)
	ReturnsByDate(ctx context.Context, sess auth.Session) ([]model.DateCount, error)
	ActivityByDate(ctx context.Context, sess auth.Session) ([]model.Activity, error)
}

var _ LibraryService = (*service.Service)(nil)

type TokenIssuer interface {
	Issue(s auth.Session) (auth.Token, error)
	Parse(token string) (auth.Session, error)
}

var _ TokenIssuer = (*auth.Issuer)(nil)
