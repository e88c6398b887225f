package state

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"entc/text"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// Splitter returns sentence splitter for configured language, it is created
// on first use since loading sentence model takes time.
func (e *LocalEnv) Splitter() *text.Splitter {
	if e.splitter != nil {
		return e.splitter
	}

	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	lang := language.English
	modelPath := ""
	if e.Cfg != nil {
		modelPath = e.Cfg.Tokenizer.ModelPath
		if tag, err := language.Parse(e.Cfg.Tokenizer.Language); err == nil {
			lang = tag
		} else {
			log.Warn("Unknown tokenizer language, using English", zap.String("language", e.Cfg.Tokenizer.Language), zap.Error(err))
		}
	}
	e.splitter = text.NewSplitter(lang, modelPath, log)
	return e.splitter
}
