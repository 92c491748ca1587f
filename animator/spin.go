package animator

import "fmt"

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = [...]string{"x", "y", "z"}

func (a Axis) String() string {
	if a < AxisX || a > AxisZ {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

func (a Axis) MarshalText() ([]byte, error) {
	if a < AxisX || a > AxisZ {
		return nil, fmt.Errorf("unknown axis %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	for i, name := range axisNames {
		if name == string(text) {
			*a = Axis(i)
			return nil
		}
	}
	return fmt.Errorf("unknown axis %q (want x, y or z)", string(text))
}

// Spinner is anything whose rotation can be advanced around one axis.
type Spinner interface {
	Spin(axis Axis, rad float32)
}

type SpinConfig struct {
	Axis Axis    `toml:"axis"`
	Step float32 `toml:"step"`
}

// ModelSpin rotates a loaded model by a fixed step every frame. Until the
// model future resolves, and forever if it fails or never resolves, it
// does nothing.
type ModelSpin[T Spinner] struct {
	cfg   SpinConfig
	model *Future[T]
}

func NewModelSpin[T Spinner](cfg SpinConfig, model *Future[T]) *ModelSpin[T] {
	return &ModelSpin[T]{cfg: cfg, model: model}
}

// Update reports whether the model was rotated.
func (s *ModelSpin[T]) Update() bool {
	m, ok := s.model.Poll()
	if !ok {
		return false
	}
	m.Spin(s.cfg.Axis, s.cfg.Step)
	return true
}
