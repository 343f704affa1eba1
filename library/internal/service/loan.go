package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-engine/library/internal/errs"
	"github.com/Astemirdum/library-engine/library/internal/model"
	"github.com/Astemirdum/library-engine/pkg/auth"
	"github.com/Astemirdum/library-engine/pkg/kafka"
)

// IssueBook lends bookID to the student of the session, dated today.
func (s *Service) IssueBook(ctx context.Context, sess auth.Session, bookID int) (model.IssueResponse, error) {
	if !sess.IsStudent() {
		return model.IssueResponse{}, errs.ErrForbidden
	}
	resp, err := s.repo.IssueLoan(ctx, sess.ID, bookID, s.today(), s.strictIssue)
	if err != nil {
		return model.IssueResponse{}, err
	}
	s.log.Info("book issued",
		zap.String("student_id", sess.ID), zap.Int("book_id", bookID), zap.Int("loan_id", resp.LoanID))
	s.publish(kafka.Event{Type: kafka.EventLoanIssued, StudentID: sess.ID, BookID: bookID, LoanID: resp.LoanID})
	return resp, nil
}

// ReturnLoan marks loanID returned today. It does not check that the loan
// exists or is still outstanding.
func (s *Service) ReturnLoan(ctx context.Context, sess auth.Session, loanID int) error {
	if sess.Anonymous() {
		return errs.ErrUnauthorized
	}
	if err := s.repo.ReturnLoan(ctx, loanID, s.today()); err != nil {
		return err
	}
	s.publish(kafka.Event{Type: kafka.EventLoanReturned, StudentID: sess.ID, LoanID: loanID})
	return nil
}

// ListLoans shows a student their own loans and staff every loan.
func (s *Service) ListLoans(ctx context.Context, sess auth.Session) ([]model.LoanView, error) {
	switch {
	case sess.IsStudent():
		return s.repo.ListLoans(ctx, sess.ID)
	case sess.IsStaff():
		return s.repo.ListLoans(ctx, "")
	}
	return nil, errs.ErrUnauthorized
}

func (s *Service) ListReturns(ctx context.Context, sess auth.Session) ([]model.ReturnView, error) {
	if !sess.IsStaff() {
		return nil, errs.ErrForbidden
	}
	return s.repo.ListReturns(ctx)
}
