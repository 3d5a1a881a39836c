package service

import (
	"strings"
	"testing"

	"github.com/dumo-express/internal/config"
	"github.com/dumo-express/internal/constants"
)

func TestCaptchaDisabledSceneAlwaysPasses(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{})

	if svc.Enabled() {
		t.Fatalf("zero config should be disabled")
	}
	if err := svc.Verify(constants.CaptchaSceneBooking, CaptchaVerifyPayload{}); err != nil {
		t.Fatalf("disabled scene should pass, got: %v", err)
	}
}

func TestCaptchaScenesAreIndependent(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{
		Enabled: true,
		Scenes:  config.CaptchaSceneConfig{Booking: true},
	})

	if !svc.SceneEnabled(constants.CaptchaSceneBooking) {
		t.Fatalf("booking scene should be enabled")
	}
	if svc.SceneEnabled(constants.CaptchaSceneContact) {
		t.Fatalf("contact scene should stay disabled")
	}
	if err := svc.Verify(constants.CaptchaSceneContact, CaptchaVerifyPayload{}); err != nil {
		t.Fatalf("disabled contact scene should pass, got: %v", err)
	}
}

func TestCaptchaVerifyRequiresAnswer(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{
		Enabled: true,
		Scenes:  config.CaptchaSceneConfig{Booking: true},
	})

	if err := svc.Verify(constants.CaptchaSceneBooking, CaptchaVerifyPayload{}); err != ErrCaptchaRequired {
		t.Fatalf("expected ErrCaptchaRequired, got: %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneBooking, CaptchaVerifyPayload{CaptchaID: "abc"}); err != ErrCaptchaRequired {
		t.Fatalf("expected ErrCaptchaRequired without a code, got: %v", err)
	}
}

func TestCaptchaGenerateAndRejectWrongAnswer(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{
		Enabled: true,
		Scenes:  config.CaptchaSceneConfig{Booking: true},
	})

	challenge, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if challenge.CaptchaID == "" {
		t.Fatalf("expected a challenge id")
	}
	if !strings.HasPrefix(challenge.ImageBase64, "data:image/") {
		t.Fatalf("expected a data URI image, got: %.30s", challenge.ImageBase64)
	}

	err = svc.Verify(constants.CaptchaSceneBooking, CaptchaVerifyPayload{
		CaptchaID:   challenge.CaptchaID,
		CaptchaCode: "definitely-wrong",
	})
	if err != ErrCaptchaInvalid {
		t.Fatalf("expected ErrCaptchaInvalid, got: %v", err)
	}
}
