package services

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"sync"
	"time"

	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/store"
)

const (
	// DefaultOTPTTL is how long an issued code stays valid.
	DefaultOTPTTL = 2 * time.Minute

	// SweepInterval is how often expired codes are reaped from the store.
	SweepInterval = 30 * time.Second
)

// OTPService issues and consumes one-time codes and reaps expired ones in the
// background.
type OTPService struct {
	otps   store.OTPStore
	mailer Mailer
	ttl    time.Duration
	now    func() time.Time

	stopSweep chan struct{}
	wg        sync.WaitGroup
}

// NewOTPService constructs an OTPService and starts the expiry sweeper.
// Call Close to stop it.
func NewOTPService(otps store.OTPStore, mailer Mailer, ttl time.Duration) *OTPService {
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	s := &OTPService{
		otps:      otps,
		mailer:    mailer,
		ttl:       ttl,
		now:       time.Now,
		stopSweep: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.sweepLoop()

	return s
}

// Issue generates a fresh code for the email, replacing any unconsumed
// predecessor, and dispatches the notification mail without blocking. A mail
// failure is logged, never propagated: the code is already persisted.
func (s *OTPService) Issue(email string) (string, error) {
	code, err := generateOTP()
	if err != nil {
		return "", err
	}

	record := &models.OneTimeCode{
		Email:     email,
		Code:      code,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.otps.Replace(record); err != nil {
		return "", err
	}

	go func() {
		if err := s.mailer.SendOTP(email, code); err != nil {
			log.Printf("[OTP] failed to send code to %s: %v", email, err)
		}
	}()

	return code, nil
}

// Consume deletes the (email, code) record and reports success at most once
// per issued code. The live-path delete carries the expiry predicate, so the
// existence check and the removal are a single atomic statement.
func (s *OTPService) Consume(email, code string) error {
	now := s.now()

	consumed, err := s.otps.ConsumeLive(email, code, now)
	if err != nil {
		return err
	}
	if consumed {
		return nil
	}

	// Not consumed: either the code never existed or it sat past its TTL.
	// Removing the stale record makes later attempts report InvalidCode.
	stale, err := s.otps.DeleteStale(email, code, now)
	if err != nil {
		return err
	}
	if stale {
		return ErrCodeExpired
	}
	return ErrInvalidCode
}

// Close stops the background sweeper and waits for it to finish.
func (s *OTPService) Close() error {
	close(s.stopSweep)
	s.wg.Wait()
	return nil
}

func (s *OTPService) sweepLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n, err := s.otps.DeleteExpired(s.now()); err != nil {
				log.Printf("[OTP] sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("[OTP] swept %d expired codes", n)
			}
		case <-s.stopSweep:
			return
		}
	}
}

func generateOTP() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
