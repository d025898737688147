package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
	"github.com/jsamuelsen11/go-planfix/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func int64Ptr(v int64) *int64 { return &v }

func success() schema.Envelope {
	return schema.Envelope{Result: schema.ResultSuccess}
}

func TestNewCommentService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(mocks.NewMockPlanfixClient(t), nil)
	if svc.logger == nil {
		t.Fatal("NewCommentService(nil logger) should create a no-op logger, got nil")
	}
}

func TestCommentService_Post(t *testing.T) {
	t.Parallel()

	t.Run("without attachments sends directly", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlanfixClient(t)
		svc := NewCommentService(client, discardLogger())

		in := schema.CommentInput{TaskID: 10, Text: "hello"}
		client.EXPECT().SendComment(mock.Anything, in).
			Return(&schema.StatusResponse{Envelope: success()}, nil)

		got, err := svc.Post(context.Background(), in, nil)
		if err != nil {
			t.Fatalf("Post() error = %v, want nil", err)
		}
		if got.Upload != nil {
			t.Errorf("Upload = %+v, want nil", got.Upload)
		}
		if got.Comment == nil || got.Comment.Result != schema.ResultSuccess {
			t.Errorf("Comment = %+v, want success", got.Comment)
		}
	})

	t.Run("attaches accepted uploads after existing ids", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlanfixClient(t)
		svc := NewCommentService(client, discardLogger())

		files := []schema.Attachment{
			{Name: "a.txt", Data: []byte("a")},
			{Name: "b.txt", Data: []byte("b")},
			{Name: "c.txt", Data: []byte("c")},
		}
		upload := &schema.UploadResult{
			IDs: []int64{101, 103},
			Failures: []schema.UploadFailure{
				{Index: 1, Name: "b.txt", Err: errors.New("rejected")},
			},
		}
		client.EXPECT().UploadFiles(mock.Anything, files).Return(upload, nil)
		client.EXPECT().SendComment(mock.Anything, mock.MatchedBy(func(in schema.CommentInput) bool {
			return in.TaskID == 10 &&
				len(in.FileIDs) == 3 &&
				in.FileIDs[0] == 7 && in.FileIDs[1] == 101 && in.FileIDs[2] == 103 &&
				in.OwnerID != nil && *in.OwnerID == 5
		})).Return(&schema.StatusResponse{Envelope: success()}, nil)

		got, err := svc.Post(context.Background(), schema.CommentInput{
			TaskID:  10,
			OwnerID: int64Ptr(5),
			FileIDs: []int64{7},
			Text:    "see attached",
		}, files)
		if err != nil {
			t.Fatalf("Post() error = %v, want nil", err)
		}
		if got.Upload != upload {
			t.Errorf("Upload = %+v, want %+v", got.Upload, upload)
		}
	})

	t.Run("transport failure during upload skips the comment", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlanfixClient(t)
		svc := NewCommentService(client, discardLogger())

		errNet := errors.New("connection reset")
		client.EXPECT().UploadFiles(mock.Anything, mock.Anything).
			Return(&schema.UploadResult{IDs: []int64{101}}, errNet)

		got, err := svc.Post(context.Background(), schema.CommentInput{TaskID: 1},
			[]schema.Attachment{{Name: "a.txt"}, {Name: "b.txt"}})
		if !errors.Is(err, errNet) {
			t.Fatalf("Post() error = %v, want %v", err, errNet)
		}
		if got == nil || got.Upload == nil {
			t.Fatalf("Post() result = %+v, want the partial upload", got)
		}
		if len(got.Upload.IDs) != 1 || got.Upload.IDs[0] != 101 {
			t.Errorf("Upload.IDs = %v, want [101]", got.Upload.IDs)
		}
		if got.Comment != nil {
			t.Errorf("Comment = %+v, want nil", got.Comment)
		}
	})

	t.Run("comment failure keeps uploaded ids", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlanfixClient(t)
		svc := NewCommentService(client, discardLogger())

		errAPI := errors.New("api error")
		upload := &schema.UploadResult{IDs: []int64{55}}
		client.EXPECT().UploadFiles(mock.Anything, mock.Anything).Return(upload, nil)
		client.EXPECT().SendComment(mock.Anything, mock.Anything).Return(nil, errAPI)

		got, err := svc.Post(context.Background(), schema.CommentInput{TaskID: 1},
			[]schema.Attachment{{Name: "a.txt"}})
		if !errors.Is(err, errAPI) {
			t.Fatalf("Post() error = %v, want %v", err, errAPI)
		}
		if got == nil || got.Upload != upload {
			t.Errorf("Post() result = %+v, want upload %+v", got, upload)
		}
	})

	t.Run("comment failure is returned", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockPlanfixClient(t)
		svc := NewCommentService(client, discardLogger())

		errAPI := errors.New("api error")
		client.EXPECT().SendComment(mock.Anything, mock.Anything).Return(nil, errAPI)

		_, err := svc.Post(context.Background(), schema.CommentInput{TaskID: 1}, nil)
		if !errors.Is(err, errAPI) {
			t.Fatalf("Post() error = %v, want %v", err, errAPI)
		}
	})
}
