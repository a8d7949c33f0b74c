package reset

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/user"
	"context"
	"fmt"
	"sync"
	"time"
)

type FakeTokenGenerator struct {
	Token Token
}

func NewFakeTokenGenerator(token string) *FakeTokenGenerator {
	return &FakeTokenGenerator{Token: Token(token)}
}

func (g *FakeTokenGenerator) GenerateResetToken() Token {
	return g.Token
}

type SentResetLink struct {
	Email c.Email
	Token Token
}

type FakeLinkSender struct {
	Sent        []SentResetLink
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeLinkSender() *FakeLinkSender {
	return &FakeLinkSender{}
}

func (s *FakeLinkSender) SendResetLink(ctx context.Context, email c.Email, token Token) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset link to %s", email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentResetLink{Email: email, Token: token})
	return nil
}

func (s *FakeLinkSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

type FakeRecordRepository struct {
	Records     []Record
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRecordRepository() *FakeRecordRepository {
	return &FakeRecordRepository{Records: make([]Record, 0, 10)}
}

func (r *FakeRecordRepository) Create(ctx context.Context, input CreateRecordInput) (record Record, err error) {
	if r.ReturnError {
		return record, fmt.Errorf("could not create reset record %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	record = Record{
		UserID:      c.NewOptional(input.UserID, true),
		Email:       input.Email,
		TokenDigest: input.TokenDigest,
		CreatedAt:   input.CreatedAt,
		ExpiresAt:   c.NewOptional(input.ExpiresAt, true),
	}
	r.Records = append(r.Records, record)
	return record, nil
}

func (r *FakeRecordRepository) GetByDigest(ctx context.Context, digest TokenDigest) (record Record, err error) {
	if r.ReturnError {
		return record, fmt.Errorf("could not get reset record by digest")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, record := range r.Records {
		if record.TokenDigest == digest {
			return record, nil
		}
	}
	return record, ErrRecordDoesNotExist
}

func (r *FakeRecordRepository) DeleteByUserID(ctx context.Context, userID user.ID) (count int64, err error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not delete reset records for user %d", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	kept := r.Records[:0]
	for _, record := range r.Records {
		if record.UserID.IsPresent && record.UserID.Value == userID {
			count++
			continue
		}
		kept = append(kept, record)
	}
	r.Records = kept
	return count, nil
}

func (r *FakeRecordRepository) MarkUsed(ctx context.Context, digest TokenDigest, at time.Time) error {
	if r.ReturnError {
		return fmt.Errorf("could not mark reset record used")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, record := range r.Records {
		if record.TokenDigest != digest {
			continue
		}
		if record.UsedAt.IsPresent {
			return ErrTokenAlreadyUsed
		}
		r.Records[ix].UsedAt = c.NewOptional(at, true)
		return nil
	}
	return ErrRecordDoesNotExist
}
