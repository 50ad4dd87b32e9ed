package suite

type Expectation string

const (
	ExpectEquivalent Expectation = "equivalent"
	ExpectDifferent  Expectation = "different"
)

func (e Expectation) Valid() bool {
	return e == ExpectEquivalent || e == ExpectDifferent
}

type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Cases       []Case `yaml:"cases"`
}

type Case struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description"`
	Expression1 string      `yaml:"expression1"`
	Expression2 string      `yaml:"expression2"`
	Expect      Expectation `yaml:"expect"`
}
