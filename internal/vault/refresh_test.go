package vault_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/password-vault/internal/vault"
	"github.com/MKhiriev/password-vault/models"
)

func TestRefreshJob_PeriodicallyReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newStoreFixture(t, ctrl)

	loaded := make(chan struct{}, 16)
	f.guard.EXPECT().Require().Return(f.session(), nil).AnyTimes()
	f.remote.EXPECT().ListAll(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]models.EncryptedRecord, error) {
			loaded <- struct{}{}
			return nil, nil
		}).AnyTimes()

	job := vault.NewRefreshJob(f.store)
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	select {
	case <-loaded:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh job never reloaded the store")
	}
}

func TestRefreshJob_StopTerminates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newStoreFixture(t, ctrl)
	f.guard.EXPECT().Require().Return(f.session(), nil).AnyTimes()
	f.remote.EXPECT().ListAll(gomock.Any()).Return(nil, nil).AnyTimes()

	job := vault.NewRefreshJob(f.store)
	job.Start(context.Background(), time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}

	// stopping an idle job is a no-op
	job.Stop()
}

func TestRefreshJob_OfflineStaysQuiet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newStoreFixture(t, ctrl)

	attempted := make(chan struct{}, 16)
	f.guard.EXPECT().Require().Return(f.session(), nil).AnyTimes()
	f.remote.EXPECT().ListAll(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]models.EncryptedRecord, error) {
			attempted <- struct{}{}
			return nil, errors.New("dial tcp: connection refused")
		}).AnyTimes()

	job := vault.NewRefreshJob(f.store)
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	// the notifier mock has no expectations registered, so a toast from a
	// failed background reload would fail the test
	select {
	case <-attempted:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh job never attempted a reload")
	}
}
