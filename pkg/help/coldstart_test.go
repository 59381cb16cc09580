package help

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestColdstartYAMLParses(t *testing.T) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(ColdstartYAML), &doc); err != nil {
		t.Fatalf("ColdstartYAML is not valid YAML: %v", err)
	}
	for _, key := range []string{"corpus_format", "commands", "config"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("ColdstartYAML missing section %q", key)
		}
	}
}
