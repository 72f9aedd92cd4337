package status

import (
	"sync"
	"testing"
)

func TestTrackerDefaultForUnknown(t *testing.T) {
	tr := NewTracker(Entry{Status: "pending", Message: "等待处理"})

	got := tr.Get(42)
	if got.Status != "pending" || got.Message != "等待处理" {
		t.Errorf("Get(unknown) = %+v, want pending default", got)
	}
}

func TestTrackerSetGetDelete(t *testing.T) {
	tr := NewTracker(Entry{Status: "pending", Message: "等待处理"})

	tr.Set(1, "processing", "正在识别")
	if got := tr.Get(1); got.Status != "processing" {
		t.Errorf("Get = %+v, want processing", got)
	}

	tr.Set(1, "completed", "识别成功")
	if got := tr.Get(1); got.Status != "completed" || got.Message != "识别成功" {
		t.Errorf("Get after overwrite = %+v", got)
	}

	tr.Delete(1)
	if got := tr.Get(1); got.Status != "pending" {
		t.Errorf("Get after delete = %+v, want default", got)
	}
}

func TestTrackerConcurrentAccess(t *testing.T) {
	tr := NewTracker(Entry{Status: "pending"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			tr.Set(id, "processing", "")
		}(int64(i))
		go func(id int64) {
			defer wg.Done()
			tr.Get(id)
		}(int64(i))
	}
	wg.Wait()
	if tr.Len() != 50 {
		t.Errorf("Len = %d, want 50", tr.Len())
	}
}
