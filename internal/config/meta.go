package config

import (
	"reflect"
	"strings"
)

var exampleInts = map[string]int{
	KeyCyclesBeforeLongBreak: 4,
	KeyLongBreakMinutes:      15,
	KeyMaxLogFiles:           1000,
	KeyShortBreakMinutes:     5,
	KeyWorkMinutes:           25,
}

var exampleBools = map[string]bool{
	KeyAutoStartBreak:    false,
	KeyCreditInterrupted: true,
	KeyDebug:             false,
	KeyNotifications:     true,
	KeySound:             true,
}

// GetSettingsExample uses reflection to build an example settings document,
// so new Settings fields show up without touching this file
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}
		name := strings.Split(jsonTag, ",")[0]
		example[name] = exampleValue(field.Type, name)
	}

	return example
}

func exampleValue(t reflect.Type, name string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"start_pause": "p",
			"help":        []string{"h", "?"},
		}
	}

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return exampleBools[name]
	case reflect.Int:
		if v, ok := exampleInts[name]; ok {
			return v
		}
		return 1
	case reflect.String:
		return "example"
	}
	return nil
}
