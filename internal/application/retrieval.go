package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/hskwon/tdocfetch/internal/domain"
	"github.com/hskwon/tdocfetch/internal/ports"
)

// Result is the outcome of one retrieval run.
type Result struct {
	// Downloads maps a meeting display name to the local paths obtained for
	// it, in match order.
	Downloads map[string][]string
	// Groups lists the keys of Downloads in scan order.
	Groups []string
	// Archives maps a group to its package path, when packaging succeeded.
	Archives map[string]string
	// Unresolved lists the targets no scanned meeting had a file for, sorted.
	Unresolved []string
}

// RetrievalService scans selected meetings for documents matching a set of
// target prefixes, downloading the first matching file per target per
// meeting. A nil archiver disables packaging.
type RetrievalService struct {
	transport ports.Transport
	store     ports.FileStore
	archiver  ports.Archiver
	log       logr.Logger
}

func NewRetrievalService(transport ports.Transport, store ports.FileStore, archiver ports.Archiver, log logr.Logger) *RetrievalService {
	return &RetrievalService{
		transport: transport,
		store:     store,
		archiver:  archiver,
		log:       log,
	}
}

// Run walks meetings in order, listing <RemotePath><docsSubdir>/ and matching
// every still-pending target against the listed filenames by string prefix.
// Meetings whose document folder cannot be entered or listed are skipped with
// a warning. The loop stops as soon as every target has been located. The
// transport cursor is returned to basePath after every meeting.
func (s *RetrievalService) Run(ctx context.Context, meetings []domain.Meeting, basePath, docsSubdir string, targets []string) (Result, error) {
	remaining := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		if target != "" {
			remaining[target] = struct{}{}
		}
	}

	result := Result{
		Downloads: make(map[string][]string),
		Archives:  make(map[string]string),
	}

	for _, meeting := range meetings {
		if len(remaining) == 0 {
			s.log.Info("all documents located, stopping early")
			break
		}

		docsPath := meeting.RemotePath + docsSubdir + "/"
		if err := s.transport.ChangeDir(ctx, docsPath); err != nil {
			s.log.Error(err, "document folder not accessible, skipping meeting", "meeting", meeting.DisplayName, "path", docsPath)
			s.returnToBase(ctx, basePath)
			continue
		}

		names, err := s.transport.List(ctx)
		if err != nil {
			s.log.Error(err, "list document folder, skipping meeting", "meeting", meeting.DisplayName, "path", docsPath)
			s.returnToBase(ctx, basePath)
			continue
		}
		s.log.V(1).Info("scanning meeting", "meeting", meeting.DisplayName, "files", len(names))

		var collected []string
		// Iterate a snapshot: remaining shrinks while we walk it.
		for _, target := range sortedKeys(remaining) {
			for _, name := range names {
				if !strings.HasPrefix(name, target) {
					continue
				}

				s.log.Info("document found", "meeting", meeting.DisplayName, "file", name, "target", target)
				path, err := s.obtain(ctx, name)
				if err != nil {
					s.log.Error(err, "download failed", "file", name)
				} else {
					collected = append(collected, path)
				}

				// The target is considered located even when the transfer
				// failed, so a transient failure forfeits it for the rest of
				// the run. Requeueing on failure would be the obvious
				// alternative.
				delete(remaining, target)
				break
			}
		}

		if len(collected) > 0 {
			result.Downloads[meeting.DisplayName] = collected
			result.Groups = append(result.Groups, meeting.DisplayName)
			s.packageGroup(meeting.DisplayName, collected, &result)
		}

		s.returnToBase(ctx, basePath)
	}

	result.Unresolved = sortedKeys(remaining)
	if len(result.Unresolved) > 0 {
		s.log.Info("some documents were not located in the scanned meetings", "unresolved", len(result.Unresolved))
	}

	return result, nil
}

// obtain produces a local path for name, downloading it unless the store
// already holds a file with that exact name. A failed transfer leaves no
// partial file behind.
func (s *RetrievalService) obtain(ctx context.Context, name string) (string, error) {
	if s.store.Exists(name) {
		s.log.Info("already downloaded, skipping transfer", "file", name)
		return s.store.Path(name), nil
	}

	dst, err := s.store.Create(name)
	if err != nil {
		return "", fmt.Errorf("create local file %q: %w", name, err)
	}

	if err := s.transport.Retrieve(ctx, name, dst); err != nil {
		_ = dst.Close()
		s.discard(name)
		return "", fmt.Errorf("retrieve %q: %w", name, err)
	}

	if err := dst.Close(); err != nil {
		s.discard(name)
		return "", fmt.Errorf("close local file %q: %w", name, err)
	}

	return s.store.Path(name), nil
}

func (s *RetrievalService) discard(name string) {
	if err := s.store.Remove(name); err != nil {
		s.log.Error(err, "remove partial file", "file", name)
	}
}

func (s *RetrievalService) packageGroup(group string, files []string, result *Result) {
	if s.archiver == nil {
		return
	}

	path, err := s.archiver.Archive(group, files)
	if err != nil {
		s.log.Error(err, "package group, archive will be missing", "group", group)
		return
	}

	result.Archives[group] = path
	s.log.Info("group packaged", "group", group, "archive", path)
}

func (s *RetrievalService) returnToBase(ctx context.Context, basePath string) {
	if err := s.transport.ChangeDir(ctx, basePath); err != nil {
		s.log.Error(err, "return to base path", "path", basePath)
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
