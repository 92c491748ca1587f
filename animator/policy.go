package animator

import "fmt"

// Policy is the rule by which the rotation target approaches the
// pointer-derived goal.
type Policy int

const (
	// Snap writes the goal directly every frame.
	Snap Policy = iota
	// WeightedEaseIn ramps a weight up while the pointer moves and
	// interpolates from the base orientation towards the goal.
	WeightedEaseIn
	// ExponentialFollow low-pass filters the rotation towards the goal
	// every frame.
	ExponentialFollow
)

var policyNames = map[Policy]string{
	Snap:              "snap",
	WeightedEaseIn:    "ease-in",
	ExponentialFollow: "exponential",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy accepts the names returned by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown damping policy %q (want snap, ease-in or exponential)", s)
}

func (p Policy) MarshalText() ([]byte, error) {
	if _, ok := policyNames[p]; !ok {
		return nil, fmt.Errorf("unknown damping policy %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
