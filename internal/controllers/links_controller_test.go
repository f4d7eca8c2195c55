package controllers

import (
	"compress/gzip"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/linkward/internal/models"
	"github.com/fsdevblog/linkward/internal/services"
	"github.com/fsdevblog/linkward/internal/services/smocks"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type linksControllerSuite struct {
	suite.Suite
	userServMock *smocks.UserMock
	linkServMock *smocks.LinkMock
	router       *gin.Engine
}

func (s *linksControllerSuite) SetupTest() {
	s.userServMock = new(smocks.UserMock)
	s.linkServMock = new(smocks.LinkMock)
	s.router = newTestRouter(s.userServMock, s.linkServMock)
}

func TestLinksControllerSuite(t *testing.T) {
	suite.Run(t, new(linksControllerSuite))
}

func (s *linksControllerSuite) TestCreateLink() {
	params := services.CreateLinkParams{
		OriginalLink: "https://example.com/page",
		Remarks:      "landing",
		Owner:        "alice",
	}
	s.linkServMock.On("Create", mock.Anything, params).Return(&models.Link{
		OriginalLink: params.OriginalLink,
		ShortLink:    "a1b2c3d4",
		Owner:        params.Owner,
	}, nil)

	w := makeRequest(s.T(), s.router, http.MethodPost, "/createlinks", gin.H{
		"original_link": params.OriginalLink,
		"remarks":       params.Remarks,
		"owner":         params.Owner,
	}, nil)

	s.Require().Equal(http.StatusCreated, w.Code)
	payload := decodeJSON(s.T(), w)
	s.Equal("Link created successfully", payload["message"])
	s.Equal("a1b2c3d4", payload["short_link"])
	s.linkServMock.AssertExpectations(s.T())
}

func (s *linksControllerSuite) TestCreateLinkValidation() {
	tests := []struct {
		name string
		body gin.H
	}{
		{
			name: "missing owner",
			body: gin.H{"original_link": "https://example.com"},
		}, {
			name: "missing original link",
			body: gin.H{"owner": "alice"},
		}, {
			name: "not a url",
			body: gin.H{"original_link": "not-a-url", "owner": "alice"},
		}, {
			name: "unsupported scheme",
			body: gin.H{"original_link": "ftp://example.com/file", "owner": "alice"},
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := makeRequest(s.T(), s.router, http.MethodPost, "/createlinks", tt.body, nil)
			s.Equal(http.StatusUnprocessableEntity, w.Code)
		})
	}
	s.linkServMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *linksControllerSuite) TestListLinks() {
	s.linkServMock.On("List", mock.Anything, "alice").Return([]models.Link{
		{OriginalLink: "https://example.com/a", ShortLink: "a1b2c3d4", Owner: "alice"},
		{OriginalLink: "https://example.com/b", ShortLink: "e5f6a7b8", Owner: "alice"},
	}, nil)

	w := makeRequest(s.T(), s.router, http.MethodGet, "/links?username=alice", nil, nil)

	s.Require().Equal(http.StatusOK, w.Code)

	var links []models.Link
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &links))
	s.Require().Len(links, 2)
	s.Equal("a1b2c3d4", links[0].ShortLink)
	s.Equal("e5f6a7b8", links[1].ShortLink)
	s.Equal("alice", links[0].Owner)
	s.linkServMock.AssertExpectations(s.T())
}

func (s *linksControllerSuite) TestListLinksEmpty() {
	s.linkServMock.On("List", mock.Anything, "").Return(nil, nil)

	w := makeRequest(s.T(), s.router, http.MethodGet, "/links", nil, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	// nil от сервиса отдается пустым массивом, не null
	s.JSONEq(`[]`, w.Body.String())
}

func (s *linksControllerSuite) TestGetLink() {
	s.linkServMock.On("GetByShortLink", mock.Anything, "a1b2c3d4").Return(&models.Link{
		OriginalLink: "https://example.com/page",
		ShortLink:    "a1b2c3d4",
		Owner:        "alice",
	}, nil)

	w := makeRequest(s.T(), s.router, http.MethodGet, "/link/a1b2c3d4", nil, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	payload := decodeJSON(s.T(), w)
	s.Equal("https://example.com/page", payload["original_link"])
	s.Equal("a1b2c3d4", payload["short_link"])
}

func (s *linksControllerSuite) TestGetLinkNotFound() {
	s.linkServMock.On("GetByShortLink", mock.Anything, "00000000").
		Return(nil, services.ErrRecordNotFound)

	w := makeRequest(s.T(), s.router, http.MethodGet, "/link/00000000", nil, nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(ErrLinkNotFound.Error(), decodeJSON(s.T(), w)["error"])
}

func (s *linksControllerSuite) TestGetOwnerLink() {
	s.linkServMock.On("GetByOwnerShortLink", mock.Anything, "alice", "a1b2c3d4").
		Return(&models.Link{
			OriginalLink: "https://example.com/page",
			ShortLink:    "a1b2c3d4",
			Owner:        "alice",
		}, nil)

	w := makeRequest(s.T(), s.router, http.MethodGet, "/link/alice/a1b2c3d4", nil, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("alice", decodeJSON(s.T(), w)["owner"])
}

func (s *linksControllerSuite) TestEditLink() {
	newRemarks := "updated"
	s.linkServMock.On("Update", mock.Anything, "alice", "a1b2c3d4", services.LinkUpdate{
		Remarks: &newRemarks,
	}).Return(&models.Link{
		OriginalLink: "https://example.com/page",
		ShortLink:    "a1b2c3d4",
		Remarks:      newRemarks,
		Owner:        "alice",
	}, nil)

	w := makeRequest(s.T(), s.router, http.MethodPut, "/link/alice/a1b2c3d4", gin.H{
		"remarks": newRemarks,
	}, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(newRemarks, decodeJSON(s.T(), w)["remarks"])
	s.linkServMock.AssertExpectations(s.T())
}

func (s *linksControllerSuite) TestEditLinkNotFound() {
	s.linkServMock.On("Update", mock.Anything, "alice", "00000000", mock.Anything).
		Return(nil, services.ErrRecordNotFound)

	w := makeRequest(s.T(), s.router, http.MethodPut, "/link/alice/00000000", gin.H{
		"remarks": "updated",
	}, nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(ErrLinkNotFound.Error(), decodeJSON(s.T(), w)["error"])
}

func (s *linksControllerSuite) TestDeleteLink() {
	s.linkServMock.On("Delete", mock.Anything, "alice", "a1b2c3d4").Return(nil)

	w := makeRequest(s.T(), s.router, http.MethodDelete, "/link/alice/a1b2c3d4", nil, nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Link deleted successfully", decodeJSON(s.T(), w)["message"])
}

func (s *linksControllerSuite) TestDeleteLinkNotFound() {
	s.linkServMock.On("Delete", mock.Anything, "alice", "00000000").
		Return(services.ErrRecordNotFound)

	w := makeRequest(s.T(), s.router, http.MethodDelete, "/link/alice/00000000", nil, nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(ErrLinkNotFound.Error(), decodeJSON(s.T(), w)["error"])
}

func (s *linksControllerSuite) TestEditClick() {
	click := models.Click{IPAddr: "203.0.113.7", UserDevice: "Mozilla/5.0"}
	s.linkServMock.On("AppendClick", mock.Anything, "a1b2c3d4", click).
		Return([]models.Click{
			{ClickTime: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), IPAddr: click.IPAddr, UserDevice: click.UserDevice},
		}, nil)

	w := makeRequest(s.T(), s.router, http.MethodPost, "/editclick/a1b2c3d4", gin.H{
		"clickData": gin.H{
			"ip_addr":     click.IPAddr,
			"user_device": click.UserDevice,
		},
	}, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	payload := decodeJSON(s.T(), w)
	s.Equal("Click data added successfully", payload["message"])

	clicks, ok := payload["clicks"].([]any)
	s.Require().True(ok)
	s.Require().Len(clicks, 1)

	entry, entryOk := clicks[0].(map[string]any)
	s.Require().True(entryOk)
	s.Equal(click.IPAddr, entry["ip_addr"])
	s.Equal(click.UserDevice, entry["user_device"])
}

func (s *linksControllerSuite) TestEditClickValidation() {
	w := makeRequest(s.T(), s.router, http.MethodPost, "/editclick/a1b2c3d4", gin.H{
		"clickData": gin.H{"user_device": "Mozilla/5.0"},
	}, nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.linkServMock.AssertNotCalled(s.T(), "AppendClick", mock.Anything, mock.Anything, mock.Anything)
}

func (s *linksControllerSuite) TestEditClickNotFound() {
	s.linkServMock.On("AppendClick", mock.Anything, "00000000", mock.Anything).
		Return(nil, services.ErrRecordNotFound)

	w := makeRequest(s.T(), s.router, http.MethodPost, "/editclick/00000000", gin.H{
		"clickData": gin.H{
			"ip_addr":     "203.0.113.7",
			"user_device": "Mozilla/5.0",
		},
	}, nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(ErrLinkNotFound.Error(), decodeJSON(s.T(), w)["error"])
}

func (s *linksControllerSuite) TestGetIP() {
	w := makeRequest(s.T(), s.router, http.MethodGet, "/get-ip", nil, map[string]string{
		"X-Forwarded-For": "203.0.113.7",
	})

	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("203.0.113.7", decodeJSON(s.T(), w)["ip"])
}

func (s *linksControllerSuite) TestHello() {
	w := makeRequest(s.T(), s.router, http.MethodGet, "/", nil, nil)

	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("Hello from the backend!", w.Body.String())
}

func (s *linksControllerSuite) TestHelloGzip() {
	w := makeRequest(s.T(), s.router, http.MethodGet, "/", nil, map[string]string{
		"Accept-Encoding": "gzip",
	})

	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("gzip", w.Header().Get("Content-Encoding"))

	gzReader, gzErr := gzip.NewReader(w.Body)
	s.Require().NoError(gzErr)
	defer func() { _ = gzReader.Close() }()

	body, readErr := io.ReadAll(gzReader)
	s.Require().NoError(readErr)
	s.Equal("Hello from the backend!", string(body))
}
