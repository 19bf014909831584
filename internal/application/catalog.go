package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/hskwon/tdocfetch/internal/domain"
	"github.com/hskwon/tdocfetch/internal/ports"
)

// CatalogService discovers meeting folders under a working group's base path
// and returns them as a sorted catalog.
type CatalogService struct {
	transport ports.Transport
	log       logr.Logger
}

func NewCatalogService(transport ports.Transport, log logr.Logger) *CatalogService {
	return &CatalogService{
		transport: transport,
		log:       log,
	}
}

// Build enters basePath, classifies its immediate entries, and recurses one
// level into adHocFolder when includeAdHoc is set. A failure on basePath
// itself is fatal and wraps domain.ErrPathUnavailable; failures inside the
// ad-hoc branch are logged and swallowed. On success the transport cursor is
// back at basePath.
func (s *CatalogService) Build(ctx context.Context, basePath, folderPrefix, adHocFolder string, includeAdHoc bool) ([]domain.Meeting, error) {
	if err := s.transport.ChangeDir(ctx, basePath); err != nil {
		return nil, fmt.Errorf("%w: enter %s: %v", domain.ErrPathUnavailable, basePath, err)
	}

	entries, err := s.transport.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrPathUnavailable, basePath, err)
	}
	s.log.V(1).Info("listed base path", "path", basePath, "entries", len(entries))

	meetings := make([]domain.Meeting, 0, len(entries))
	for _, entry := range entries {
		ordinal, subRank := domain.ParseMeetingFolder(entry, folderPrefix)
		if ordinal != -1 {
			meetings = append(meetings, domain.Meeting{
				DisplayName: entry,
				RemotePath:  basePath + entry + "/",
				Kind:        domain.KindNumbered,
				Ordinal:     ordinal,
				SubRank:     subRank,
			})
			continue
		}

		if includeAdHoc && entry == adHocFolder {
			meetings = append(meetings, s.exploreAdHoc(ctx, basePath, entry)...)
		}
	}

	domain.SortCatalog(meetings)
	s.log.Info("catalog built", "meetings", len(meetings))

	return meetings, nil
}

// exploreAdHoc lists the ad-hoc folder's immediate entries and treats every
// name without a "." as a nested meeting folder. Any failure here skips the
// ad-hoc branch instead of aborting the whole build.
func (s *CatalogService) exploreAdHoc(ctx context.Context, basePath, folder string) []domain.Meeting {
	adHocBase := basePath + folder + "/"

	returnToBase := func() {
		if err := s.transport.ChangeDir(ctx, basePath); err != nil {
			s.log.Error(err, "return to base path", "path", basePath)
		}
	}

	if err := s.transport.ChangeDir(ctx, adHocBase); err != nil {
		s.log.Error(err, "ad-hoc folder not accessible, skipping", "path", adHocBase)
		returnToBase()
		return nil
	}

	entries, err := s.transport.List(ctx)
	if err != nil {
		s.log.Error(err, "list ad-hoc folder, skipping", "path", adHocBase)
		returnToBase()
		return nil
	}
	s.log.V(1).Info("listed ad-hoc folder", "path", adHocBase, "entries", len(entries))

	meetings := make([]domain.Meeting, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(entry, ".") {
			s.log.V(1).Info("skipping ad-hoc entry, looks like a file", "name", entry)
			continue
		}

		meetings = append(meetings, domain.Meeting{
			DisplayName: folder + "/" + entry,
			RemotePath:  adHocBase + entry + "/",
			Kind:        domain.KindAdHoc,
			Ordinal:     -1,
		})
	}

	returnToBase()
	return meetings
}
