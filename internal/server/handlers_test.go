package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/async"
	"github.com/qiwen-ops/passportd/internal/common"
	"github.com/qiwen-ops/passportd/internal/entity"
	"github.com/qiwen-ops/passportd/internal/pipeline"
	"github.com/qiwen-ops/passportd/internal/repository"
	"github.com/qiwen-ops/passportd/internal/status"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memRecords struct {
	seq  int64
	recs map[int64]*entity.PassportRecord
}

func newMemRecords() *memRecords {
	return &memRecords{recs: make(map[int64]*entity.PassportRecord)}
}

func (m *memRecords) CreatePending(ctx context.Context, taskID, imagePath string) (*entity.PassportRecord, error) {
	m.seq++
	rec := &entity.PassportRecord{
		ID:        m.seq,
		TaskID:    taskID,
		Status:    string(constants.StatusPending),
		ImagePath: imagePath,
	}
	m.recs[rec.ID] = rec
	return rec, nil
}

func (m *memRecords) Get(ctx context.Context, id int64) (*entity.PassportRecord, error) {
	rec, ok := m.recs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return rec, nil
}

func (m *memRecords) MarkProcessing(ctx context.Context, id int64) error { return nil }

func (m *memRecords) MarkFailed(ctx context.Context, id int64, remark string) error { return nil }

func (m *memRecords) ApplyResult(ctx context.Context, res repository.RecordResult) error { return nil }

func (m *memRecords) ListWindow(ctx context.Context, from, to *time.Time) ([]*entity.PassportRecord, error) {
	return nil, nil
}

type fakeProber struct{ up bool }

func (p fakeProber) Healthy(ctx context.Context) bool { return p.up }

type testServer struct {
	router  *gin.Engine
	tracker *status.Tracker
	uploads *async.Queue[struct{}]
	tasks   *async.Queue[pipeline.ProcessingTask]
}

func newTestServer(t *testing.T, taskCap int, prober HealthProber) *testServer {
	t.Helper()
	dir := t.TempDir()
	uploads := async.NewQueue[struct{}](30)
	tasks := async.NewQueue[pipeline.ProcessingTask](taskCap)
	tracker := status.NewTracker(status.Entry{
		Status:  string(constants.StatusPending),
		Message: constants.StatusMessagePending,
	})
	admission := pipeline.NewAdmission(
		uploads,
		tasks,
		async.NewIOPool(2, slog.Default()),
		newMemRecords(),
		tracker,
		dir,
		slog.Default(),
	)
	srv := New(admission, tracker, uploads, tasks, prober, dir, 10<<20, slog.Default())
	return &testServer{router: srv.Router(), tracker: tracker, uploads: uploads, tasks: tasks}
}

func multipartImage(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="photo.jpg"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return body, w.FormDataContentType()
}

func doRequest(ts *testServer, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestUploadPhoto(t *testing.T) {
	ts := newTestServer(t, 50, fakeProber{up: true})

	body, ct := multipartImage(t, "image/jpeg", []byte("jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/ocr/upload-photo", body)
	req.Header.Set("Content-Type", ct)

	rec := doRequest(ts, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	got := decodeBody(t, rec)
	if got["status"] != "success" {
		t.Errorf("status field = %v", got["status"])
	}
	if got["record_id"] == nil || got["task_id"] == "" {
		t.Errorf("body = %v", got)
	}
	if got["queue_position"].(float64) != 1 {
		t.Errorf("queue_position = %v, want 1", got["queue_position"])
	}
	if _, ok := ts.tasks.TryDequeue(); !ok {
		t.Error("no processing task enqueued")
	}
}

func TestUploadPhotoMissingFile(t *testing.T) {
	ts := newTestServer(t, 50, fakeProber{up: true})

	req := httptest.NewRequest(http.MethodPost, "/api/ocr/upload-photo", nil)
	rec := doRequest(ts, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeBody(t, rec); got["detail"] != "请选择有效的图片文件" {
		t.Errorf("detail = %v", got["detail"])
	}
}

func TestUploadPhotoRejectsNonImage(t *testing.T) {
	ts := newTestServer(t, 50, fakeProber{up: true})

	body, ct := multipartImage(t, "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/api/ocr/upload-photo", body)
	req.Header.Set("Content-Type", ct)

	rec := doRequest(ts, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUploadPhotoQueueFull(t *testing.T) {
	ts := newTestServer(t, 2, fakeProber{up: true})
	for i := 0; i < 2; i++ {
		ts.tasks.TryEnqueue(pipeline.ProcessingTask{RecordID: int64(i + 1)})
	}

	body, ct := multipartImage(t, "image/jpeg", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/ocr/upload-photo", body)
	req.Header.Set("Content-Type", ct)

	rec := doRequest(ts, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	got := decodeBody(t, rec)
	detail, _ := got["detail"].(string)
	if detail == "" {
		t.Errorf("detail = %v, want queue-full message", got["detail"])
	}
}

func TestRecordStatus(t *testing.T) {
	ts := newTestServer(t, 50, fakeProber{up: true})

	req := httptest.NewRequest(http.MethodGet, "/api/ocr/status/42", nil)
	rec := doRequest(ts, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	got := decodeBody(t, rec)
	if got["status"] != string(constants.StatusPending) || got["message"] != constants.StatusMessagePending {
		t.Errorf("unknown id body = %v", got)
	}

	ts.tracker.Set(42, string(constants.StatusCompleted), constants.RemarkSuccess)
	rec = doRequest(ts, httptest.NewRequest(http.MethodGet, "/api/ocr/status/42", nil))
	got = decodeBody(t, rec)
	if got["status"] != string(constants.StatusCompleted) || got["message"] != constants.RemarkSuccess {
		t.Errorf("tracked id body = %v", got)
	}
}

func TestRecordStatusBadID(t *testing.T) {
	ts := newTestServer(t, 50, fakeProber{up: true})
	rec := doRequest(ts, httptest.NewRequest(http.MethodGet, "/api/ocr/status/notanumber", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCheckService(t *testing.T) {
	for _, tc := range []struct {
		up   bool
		want string
	}{
		{up: true, want: "available"},
		{up: false, want: "unavailable"},
	} {
		ts := newTestServer(t, 50, fakeProber{up: tc.up})
		ts.tasks.TryEnqueue(pipeline.ProcessingTask{RecordID: 1})

		rec := doRequest(ts, httptest.NewRequest(http.MethodGet, "/api/ocr/status/check", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		got := decodeBody(t, rec)
		if got["ocr_service"] != tc.want {
			t.Errorf("ocr_service = %v, want %s", got["ocr_service"], tc.want)
		}
		if got["ocr_queue_size"].(float64) != 1 {
			t.Errorf("ocr_queue_size = %v, want 1", got["ocr_queue_size"])
		}
		if got["max_upload_queue"].(float64) != 30 {
			t.Errorf("max_upload_queue = %v, want 30", got["max_upload_queue"])
		}
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, 50, fakeProber{up: true})
	rec := doRequest(ts, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	got := decodeBody(t, rec)
	if got["status"] != "ok" || got["service"] != "passportd" {
		t.Errorf("body = %v", got)
	}
}
