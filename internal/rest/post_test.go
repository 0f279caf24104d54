package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oakheim/blog-comments/domain"
	"github.com/oakheim/blog-comments/domain/mocks"
)

func TestFetchPosts(t *testing.T) {
	postSvc := new(mocks.PostUsecase)
	route := setupRouter(postSvc, new(mocks.CommentUsecase), new(mocks.LikeUsecase))

	postSvc.On("Fetch", mock.Anything).Return([]domain.Post{
		{ID: 1, Title: "First", Body: "should not leak"},
		{ID: 2, Title: "Second"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	route.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"title":"First"},{"id":2,"title":"Second"}]`, w.Body.String())
}

func TestGetPost_WithComments(t *testing.T) {
	postSvc := new(mocks.PostUsecase)
	route := setupRouter(postSvc, new(mocks.CommentUsecase), new(mocks.LikeUsecase))

	parentID := int64(1)
	detail := domain.PostDetail{
		Post: domain.Post{ID: 7, Title: "Title", Body: "Body"},
		Comments: []domain.Comment{
			{ID: 2, UserID: 20, Message: "reply", ParentID: &parentID, LikeCount: 1, LikedByMe: true, User: &domain.User{ID: 20, Name: "Bob"}},
			{ID: 1, UserID: 10, Message: "root", User: &domain.User{ID: 10, Name: "Alice"}},
		},
	}
	postSvc.On("GetWithComments", mock.Anything, int64(7), int64(demoUserID)).Return(detail, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/7", nil)
	route.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Title", body["title"])
	assert.Equal(t, "Body", body["body"])

	comments := body["comments"].([]any)
	require.Len(t, comments, 2)

	reply := comments[0].(map[string]any)
	assert.Equal(t, float64(2), reply["id"])
	assert.Equal(t, float64(1), reply["parentId"])
	assert.Equal(t, float64(1), reply["likeCount"])
	assert.Equal(t, true, reply["likedByMe"])
	assert.Equal(t, "Bob", reply["author"].(map[string]any)["name"])

	root := comments[1].(map[string]any)
	assert.Nil(t, root["parentId"])
	assert.Equal(t, false, root["likedByMe"])
}

func TestGetPost_NotFound(t *testing.T) {
	postSvc := new(mocks.PostUsecase)
	route := setupRouter(postSvc, new(mocks.CommentUsecase), new(mocks.LikeUsecase))

	postSvc.On("GetWithComments", mock.Anything, int64(404), int64(demoUserID)).
		Return(domain.PostDetail{}, domain.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/404", nil)
	route.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPost_BadID(t *testing.T) {
	postSvc := new(mocks.PostUsecase)
	route := setupRouter(postSvc, new(mocks.CommentUsecase), new(mocks.LikeUsecase))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/abc", nil)
	route.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	postSvc.AssertNotCalled(t, "GetWithComments", mock.Anything, mock.Anything, mock.Anything)
}
