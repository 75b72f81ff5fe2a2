package service

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sudharsan-ak/job-autopilot/model"
	"github.com/sudharsan-ak/job-autopilot/utils"
)

// ProfileService loads the candidate profile from disk and resolves the
// résumé path before any worker runs.
type ProfileService struct {
	path       string
	resumePath string
}

func NewProfileService(path, resumePath string) *ProfileService {
	return &ProfileService{path: path, resumePath: resumePath}
}

// Load parses the profile YAML and resolves the résumé to an absolute
// path that exists. The config-level resume path wins over the profile's
// own; a missing résumé file is an error because every platform needs it.
func (s *ProfileService) Load() (*model.Profile, error) {
	data, err := os.ReadFile(utils.ResolvePath(s.path))
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var profile model.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	resume := s.resumePath
	if resume == "" {
		resume = profile.ResumePath
	}
	resolved, err := resolveResume(resume)
	if err != nil {
		return nil, err
	}
	profile.ResumePath = resolved

	if profile.Email == "" {
		return nil, fmt.Errorf("profile has no email")
	}
	return &profile, nil
}

// resolveResume tries the path as given, then relative to the project
// root, and returns the first candidate that exists.
func resolveResume(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no resume path configured")
	}

	candidates := []string{path, utils.ResolvePath(path)}
	for _, c := range candidates {
		abs, err := filepath.Abs(c)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return abs, nil
		}
	}
	return "", fmt.Errorf("resume file not found: %s", path)
}
