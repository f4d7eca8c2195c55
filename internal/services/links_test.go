package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/fsdevblog/linkward/internal/db"
	"github.com/fsdevblog/linkward/internal/models"
	"github.com/fsdevblog/linkward/internal/repositories"
	"github.com/fsdevblog/linkward/internal/repositories/memstore"
	"github.com/fsdevblog/linkward/internal/services/mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

var shortLinkRegexp = regexp.MustCompile(`^[0-9a-f]{8}$`)

type linksServiceSuite struct {
	suite.Suite
	linkService *LinkService
}

func (s *linksServiceSuite) SetupTest() {
	store := db.NewMemStorage()
	s.linkService = NewLinkService(memstore.NewLinkRepo(store))
}

func TestLinksServiceSuite(t *testing.T) {
	suite.Run(t, new(linksServiceSuite))
}

func (s *linksServiceSuite) TestCreate() {
	params := CreateLinkParams{
		OriginalLink: gofakeit.URL(),
		Remarks:      gofakeit.Sentence(3),
		Owner:        gofakeit.Username(),
	}

	link, err := s.linkService.Create(s.T().Context(), params)
	s.Require().NoError(err)
	s.Regexp(shortLinkRegexp, link.ShortLink)
	s.Equal(params.OriginalLink, link.OriginalLink)
	s.Equal(params.Owner, link.Owner)
	s.NotNil(link.Clicks)
	s.Empty(link.Clicks)
}

func (s *linksServiceSuite) TestCreateUniqueCodes() {
	owner := gofakeit.Username()
	seen := make(map[string]struct{})

	for range 20 {
		link, err := s.linkService.Create(s.T().Context(), CreateLinkParams{
			OriginalLink: gofakeit.URL(),
			Owner:        owner,
		})
		s.Require().NoError(err)

		_, dup := seen[link.ShortLink]
		s.Require().False(dup, "duplicate short code %s", link.ShortLink)
		seen[link.ShortLink] = struct{}{}
	}
}

func (s *linksServiceSuite) TestGetByShortLink() {
	link, err := s.linkService.Create(s.T().Context(), CreateLinkParams{
		OriginalLink: gofakeit.URL(),
		Owner:        gofakeit.Username(),
	})
	s.Require().NoError(err)

	byHash, hashErr := s.linkService.GetByShortLink(s.T().Context(), link.ShortLink)
	s.Require().NoError(hashErr)

	byOwner, ownerErr := s.linkService.GetByOwnerShortLink(s.T().Context(), link.Owner, link.ShortLink)
	s.Require().NoError(ownerErr)

	s.Equal(byHash.OriginalLink, byOwner.OriginalLink)
	s.Equal(byHash.ShortLink, byOwner.ShortLink)

	_, notFoundErr := s.linkService.GetByShortLink(s.T().Context(), "00000000")
	s.ErrorIs(notFoundErr, ErrRecordNotFound)

	_, wrongOwnerErr := s.linkService.GetByOwnerShortLink(s.T().Context(), "someone-else", link.ShortLink)
	s.ErrorIs(wrongOwnerErr, ErrRecordNotFound)
}

func (s *linksServiceSuite) TestList() {
	owner := gofakeit.Username()
	for range 2 {
		_, err := s.linkService.Create(s.T().Context(), CreateLinkParams{
			OriginalLink: gofakeit.URL(),
			Owner:        owner,
		})
		s.Require().NoError(err)
	}
	_, err := s.linkService.Create(s.T().Context(), CreateLinkParams{
		OriginalLink: gofakeit.URL(),
		Owner:        gofakeit.Username(),
	})
	s.Require().NoError(err)

	byOwner, listErr := s.linkService.List(s.T().Context(), owner)
	s.Require().NoError(listErr)
	s.Len(byOwner, 2)

	all, allErr := s.linkService.List(s.T().Context(), "")
	s.Require().NoError(allErr)
	s.Len(all, 3)
}

func (s *linksServiceSuite) TestUpdate() {
	link, err := s.linkService.Create(s.T().Context(), CreateLinkParams{
		OriginalLink: gofakeit.URL(),
		Remarks:      "initial",
		Owner:        gofakeit.Username(),
	})
	s.Require().NoError(err)

	newRemarks := "updated"
	updated, updErr := s.linkService.Update(s.T().Context(), link.Owner, link.ShortLink, LinkUpdate{
		Remarks: &newRemarks,
	})
	s.Require().NoError(updErr)
	s.Equal(newRemarks, updated.Remarks)
	// незатронутые поля сохраняются
	s.Equal(link.OriginalLink, updated.OriginalLink)
	s.Equal(link.ShortLink, updated.ShortLink)

	_, notFoundErr := s.linkService.Update(s.T().Context(), link.Owner, "00000000", LinkUpdate{})
	s.ErrorIs(notFoundErr, ErrRecordNotFound)
}

func (s *linksServiceSuite) TestDelete() {
	link, err := s.linkService.Create(s.T().Context(), CreateLinkParams{
		OriginalLink: gofakeit.URL(),
		Owner:        gofakeit.Username(),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.linkService.Delete(s.T().Context(), link.Owner, link.ShortLink))

	_, getErr := s.linkService.GetByShortLink(s.T().Context(), link.ShortLink)
	s.ErrorIs(getErr, ErrRecordNotFound)

	delErr := s.linkService.Delete(s.T().Context(), link.Owner, link.ShortLink)
	s.ErrorIs(delErr, ErrRecordNotFound)
}

func (s *linksServiceSuite) TestAppendClick() {
	link, err := s.linkService.Create(s.T().Context(), CreateLinkParams{
		OriginalLink: gofakeit.URL(),
		Owner:        gofakeit.Username(),
	})
	s.Require().NoError(err)

	first := models.Click{IPAddr: "203.0.113.7", UserDevice: "Mozilla/5.0"}
	clicks, appendErr := s.linkService.AppendClick(s.T().Context(), link.ShortLink, first)
	s.Require().NoError(appendErr)
	s.Require().Len(clicks, 1)
	s.Equal(first.IPAddr, clicks[0].IPAddr)
	// время клика проставляется если клиент его не прислал
	s.False(clicks[0].ClickTime.IsZero())

	second := models.Click{
		ClickTime:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		IPAddr:     "198.51.100.2",
		UserDevice: "curl/8.5",
	}
	clicks, appendErr = s.linkService.AppendClick(s.T().Context(), link.ShortLink, second)
	s.Require().NoError(appendErr)
	s.Require().Len(clicks, 2)
	s.Equal(first.IPAddr, clicks[0].IPAddr)
	s.Equal(second.IPAddr, clicks[1].IPAddr)
	s.Equal(second.ClickTime, clicks[1].ClickTime)

	_, notFoundErr := s.linkService.AppendClick(s.T().Context(), "00000000", first)
	s.ErrorIs(notFoundErr, ErrRecordNotFound)
}

func TestLinkServiceCreateRetriesOnCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	linkRepo := mocks.NewMockLinkRepository(ctrl)
	gomock.InOrder(
		linkRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(repositories.ErrDuplicateKey).Times(2),
		linkRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
	)

	serv := NewLinkService(linkRepo)
	link, err := serv.Create(t.Context(), CreateLinkParams{
		OriginalLink: "https://example.com",
		Owner:        "alice",
	})
	if err != nil {
		t.Fatalf("Create() error = %+v, want nil", err)
	}
	if !shortLinkRegexp.MatchString(link.ShortLink) {
		t.Errorf("Create() short link = %q, want 8 hex chars", link.ShortLink)
	}
}

func TestLinkServiceCreateExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	linkRepo := mocks.NewMockLinkRepository(ctrl)
	linkRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(repositories.ErrDuplicateKey).Times(maxShortCodeAttempts)

	serv := NewLinkService(linkRepo)
	_, err := serv.Create(t.Context(), CreateLinkParams{
		OriginalLink: "https://example.com",
		Owner:        "alice",
	})
	if !errors.Is(err, ErrShortCodeExhausted) {
		t.Errorf("Create() error = %+v, want ErrShortCodeExhausted", err)
	}
}
