package util

import (
	"fmt"
	"strconv"
	"strings"
)

type Semver struct {
	Major      int
	Minor      int
	Patch      int
	Beta       bool
	Alpha      bool
	Prerelease int
}

// Parse reads MAJOR.MINOR.PATCH with an optional -alpha.N or -beta.N suffix.
// A leading "v" is accepted.
func Parse(semver string) (Semver, error) {
	s := Semver{}
	version, pre, hasPre := strings.Cut(strings.TrimPrefix(strings.TrimSpace(semver), "v"), "-")
	split := strings.Split(version, ".")
	if len(split) != 3 {
		return Semver{}, fmt.Errorf("invalid version %q: want MAJOR.MINOR.PATCH", semver)
	}

	nums := make([]int, 3)
	for i, part := range split {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Semver{}, fmt.Errorf("invalid version %q: bad number %q", semver, part)
		}
		nums[i] = n
	}
	s.Major, s.Minor, s.Patch = nums[0], nums[1], nums[2]

	if hasPre {
		kind, num, ok := strings.Cut(pre, ".")
		if !ok {
			return Semver{}, fmt.Errorf("invalid prerelease %q: want alpha.N or beta.N", pre)
		}
		switch kind {
		case "beta":
			s.Beta = true
		case "alpha":
			s.Alpha = true
		default:
			return Semver{}, fmt.Errorf("invalid prerelease type: %s", kind)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return Semver{}, fmt.Errorf("invalid prerelease number %q", num)
		}
		s.Prerelease = n
	}

	return s, nil
}

func (s Semver) String() string {
	str := strconv.Itoa(s.Major) + "." + strconv.Itoa(s.Minor) + "." + strconv.Itoa(s.Patch)
	if s.Beta {
		str += "-beta." + strconv.Itoa(s.Prerelease)
	} else if s.Alpha {
		str += "-alpha." + strconv.Itoa(s.Prerelease)
	}
	return str
}

// Compare returns -1, 0 or 1. Prereleases sort before their release and
// alpha sorts before beta.
func (s Semver) Compare(o Semver) int {
	for _, d := range [...]int{s.Major - o.Major, s.Minor - o.Minor, s.Patch - o.Patch, s.stage() - o.stage(), s.Prerelease - o.Prerelease} {
		if d < 0 {
			return -1
		}
		if d > 0 {
			return 1
		}
	}
	return 0
}

func (s Semver) stage() int {
	switch {
	case s.Alpha:
		return 0
	case s.Beta:
		return 1
	}
	return 2
}

// Satisfies checks s against a constraint: an exact version, or one prefixed
// with ^, ~, >, >=, < or <=.
func (s Semver) Satisfies(cmp string) (bool, error) {
	cmp = strings.TrimSpace(cmp)
	op := ""
	for _, prefix := range []string{">=", "<=", "^", "~", ">", "<", "="} {
		if strings.HasPrefix(cmp, prefix) {
			op = prefix
			cmp = strings.TrimSpace(cmp[len(prefix):])
			break
		}
	}

	c, err := Parse(cmp)
	if err != nil {
		return false, err
	}

	order := s.Compare(c)
	switch op {
	case "^":
		if c.Major == 0 {
			return s.Major == 0 && s.Minor == c.Minor && order >= 0, nil
		}
		return s.Major == c.Major && order >= 0, nil
	case "~":
		return s.Major == c.Major && s.Minor == c.Minor && order >= 0, nil
	case ">":
		return order > 0, nil
	case ">=":
		return order >= 0, nil
	case "<":
		return order < 0, nil
	case "<=":
		return order <= 0, nil
	}
	return order == 0, nil
}
