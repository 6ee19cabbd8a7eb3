// Package config loads progressus.json, the project file read by the
// progressus CLI.
//
// # Configuration File Structure
//
//	{
//	  "selector": ".download",
//	  "input": "page.html",
//	  "max": 12,
//	  "value": 0,
//	  "text": "Downloading",
//	  "format": "{value} of {max} files",
//	  "steps": [3, 6, 12],
//	  "pretty": false
//	}
//
// "max" and "value" accept numbers or numeric strings and are checked with
// the same rules the widget applies at Init. Relative "input" paths resolve
// against the directory holding the file.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	w, err := progress.Init(doc, cfg.Selector, cfg.Options()...)
package config
