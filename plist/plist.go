// Package plist renders the docset Info.plist property list.
package plist

import (
	"os"

	"github.com/beevik/etree"
	"github.com/fwojciec/docset"
)

const doctype = `DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`

// Marshal renders the Info.plist document for the given docset info.
// Key order is fixed: downstream consumers diff the artifact
// byte-for-byte.
func Marshal(info *docset.Info) ([]byte, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(doctype)

	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	dict := plist.CreateElement("dict")

	addString(dict, "CFBundleIdentifier", info.Identifier)
	addString(dict, "CFBundleName", info.Name)
	addString(dict, "DocSetPlatformFamily", info.PlatformFamily)
	addBool(dict, "isDashDocset", true)
	addBool(dict, "isJavaScriptEnabled", info.JavaScriptEnabled)
	addString(dict, "dashIndexFilePath", info.IndexFilePath)
	addString(dict, "DashDocSetKeyword", info.Keyword)
	addString(dict, "DashDocSetFallbackURL", info.FallbackURL)

	// Enables the viewer's in-page table of contents (the injected
	// dashAnchor markers).
	addString(dict, "DashDocSetFamily", "dashtoc")

	doc.Indent(4)
	return doc.WriteToBytes()
}

// Write renders the Info.plist and writes it to path.
func Write(info *docset.Info, path string) error {
	data, err := Marshal(info)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func addString(dict *etree.Element, key, value string) {
	dict.CreateElement("key").SetText(key)
	dict.CreateElement("string").SetText(value)
}

func addBool(dict *etree.Element, key string, value bool) {
	dict.CreateElement("key").SetText(key)
	if value {
		dict.CreateElement("true")
	} else {
		dict.CreateElement("false")
	}
}
