package rules

import (
	"errors"
	"time"
)

const (
	BonusCap = 10_000

	CheckInCooldown = 24 * time.Hour
	// a check-in later than this after the previous one restarts the ladder
	streakWindow = 48 * time.Hour

	SpinCooldown = 24 * time.Hour
	// users with at least this many valid referrals spin without cooldown
	UnlimitedSpinReferrals = 60
	MinSpinReferrals       = 1
)

var (
	ErrCheckInCooldown = errors.New("already checked in, come back later")
	ErrSpinCooldown    = errors.New("spin not available yet")
	ErrSpinLocked      = errors.New("invite a friend who invests to unlock the wheel")
	ErrBonusCapReached = errors.New("bonus cap reached")
)

var checkInLadder = []int64{50, 100, 150, 200, 300, 400, 500}

// CheckInReward is the reward for the given day of the streak, 1-based.
// Days past the end of the ladder keep the last reward.
func CheckInReward(streak int) int64 {
	if streak < 1 {
		streak = 1
	}
	if streak > len(checkInLadder) {
		return checkInLadder[len(checkInLadder)-1]
	}
	return checkInLadder[streak-1]
}

// NextStreak returns the streak day a check-in at now would count as.
func NextStreak(last *time.Time, streak int, now time.Time) (int, error) {
	if last == nil {
		return 1, nil
	}
	since := now.Sub(*last)
	switch {
	case since < CheckInCooldown:
		return 0, ErrCheckInCooldown
	case since <= streakWindow:
		return streak + 1, nil
	default:
		return 1, nil
	}
}

func NextCheckInAt(last *time.Time) time.Time {
	if last == nil {
		return time.Time{}
	}
	return last.Add(CheckInCooldown)
}

// CanSpin reports whether a user with validReferrals who last spun at
// lastSpin may spin at now.
func CanSpin(lastSpin *time.Time, validReferrals int, now time.Time) error {
	if validReferrals >= UnlimitedSpinReferrals {
		return nil
	}
	if validReferrals < MinSpinReferrals {
		return ErrSpinLocked
	}
	if lastSpin != nil && now.Sub(*lastSpin) < SpinCooldown {
		return ErrSpinCooldown
	}
	return nil
}

func NextSpinAt(lastSpin *time.Time, validReferrals int) time.Time {
	if lastSpin == nil || validReferrals >= UnlimitedSpinReferrals {
		return time.Time{}
	}
	return lastSpin.Add(SpinCooldown)
}

// CapBonus clamps prize so that total never goes above limit.
func CapBonus(total, prize, limit int64) (int64, error) {
	if total >= limit {
		return 0, ErrBonusCapReached
	}
	if total+prize > limit {
		return limit - total, nil
	}
	return prize, nil
}
