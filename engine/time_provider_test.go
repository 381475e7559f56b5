package engine

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(epoch)

	if !mock.Now().Equal(epoch) {
		t.Errorf("Initial time = %v, want %v", mock.Now(), epoch)
	}

	next := epoch.Add(24 * time.Hour)
	mock.SetTime(next)
	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)

	if want := next.Add(90 * time.Minute); !mock.Now().Equal(want) {
		t.Errorf("After SetTime+Advance = %v, want %v", mock.Now(), want)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(epoch)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if want := epoch.Add(250 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("After concurrent advances = %v, want %v", mock.Now(), want)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
	var _ Clock = &PausableClock{}
}
