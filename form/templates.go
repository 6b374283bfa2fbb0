package form

import (
	"html/template"
	"strings"
)

var templates = template.Must(template.New("form").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(markup))

const markup = `
{{define "input"}}<input class="input" type="{{.InputType}}" id="{{.ID}}" name="{{.Field.Name}}" value="{{.Text}}"{{with .Field.Placeholder}} placeholder="{{.}}"{{end}}{{if eq .InputType "number"}} step="any"{{end}}>{{end}}

{{define "textarea"}}<textarea class="textarea" id="{{.ID}}" name="{{.Field.Name}}" rows="4"{{with .Field.Placeholder}} placeholder="{{.}}"{{end}}>{{.Text}}</textarea>{{end}}

{{define "date"}}<input class="input" type="date" id="{{.ID}}" name="{{.Field.Name}}" value="{{.Text}}">{{end}}

{{define "dropdown"}}<select class="select" id="{{.ID}}" name="{{.Field.Name}}">
<option value="">{{with .Field.Placeholder}}{{.}}{{else}}Select an option{{end}}</option>
{{- $v := .Text}}{{range .Field.Options}}
<option value="{{.}}"{{if eq . $v}} selected{{end}}>{{.}}</option>{{end}}
</select>{{end}}

{{define "radio"}}<div class="radio-group" id="{{.ID}}">{{$c := .}}{{$v := .Text}}{{range $i, $o := .Field.Options}}
<label class="radio"><input type="radio" name="{{$c.Field.Name}}" value="{{$o}}"{{if eq $o $v}} checked{{end}}> {{$o}}</label>{{end}}
</div>{{end}}

{{define "checkbox"}}<div class="checkbox">
<input type="hidden" name="{{.Field.Name}}" value="false">
<input type="checkbox" id="{{.ID}}" name="{{.Field.Name}}" value="true"{{if .Checked}} checked{{end}}>
<label for="{{.ID}}">{{.Field.Label}}</label>
</div>{{end}}

{{define "file"}}<div class="file-input">
{{- with .Preview}}
<img class="file-preview" src="{{.}}" alt="Current file">{{end}}
<input class="input" type="file" id="{{.ID}}" name="{{.Field.Name}}">
{{- if .File.Path}}
<label class="file-remove"><input type="checkbox" name="{{.Field.Name}}_remove" value="true"> Remove current file</label>{{end}}
</div>{{end}}

{{define "tagpicker"}}{{$c := .}}<div class="tag-picker" id="{{.ID}}">
<input type="hidden" name="{{.Field.Name}}" value="">
{{- range .Tags}}
<input type="hidden" name="{{$c.Field.Name}}" value="{{.}}">{{end}}
<details class="tag-dialog"{{if .State.DialogOpen}} open{{end}}>
<summary class="btn btn-outline">{{if .Tags}}Selected: {{join .Tags ", "}}{{else}}Select {{.Field.DisplayName}}{{end}}</summary>
<div class="dialog">
<h4>Select or Add {{.Field.DisplayName}}</h4>
<div class="tags selected">
{{- range .Tags}}
<button type="submit" class="badge badge-secondary" name="_action" value="remove:{{$c.Field.Name}}:{{.}}">{{$c.Badge .}} &times;</button>{{end}}
</div>
<div class="tag-add">
<input class="input" type="text" name="_newtag.{{.Field.Name}}" value="{{.State.PendingTag}}" placeholder="Add new tag">
<button type="submit" class="btn" name="_action" value="add:{{.Field.Name}}">Add Tag</button>
</div>
<div class="tags available">
{{- range .Field.TagOptions}}
<button type="submit" class="badge {{if $c.Has .}}badge-default{{else}}badge-outline{{end}}" name="_action" value="toggle:{{$c.Field.Name}}:{{.}}">{{$c.Badge .}}</button>{{end}}
</div>
<button type="submit" class="btn" name="_action" value="close:{{.Field.Name}}">Done</button>
</div>
</details>
</div>{{end}}

{{define "richtext"}}<div class="richtext" data-target="{{.ID}}">
<div class="richtext-toolbar">
<button type="button" data-cmd="bold"><b>B</b></button>
<button type="button" data-cmd="italic"><i>I</i></button>
<button type="button" data-cmd="underline"><u>U</u></button>
<button type="button" data-cmd="formatBlock" data-arg="h1">H1</button>
<button type="button" data-cmd="formatBlock" data-arg="h2">H2</button>
<button type="button" data-cmd="formatBlock" data-arg="h3">H3</button>
<button type="button" data-cmd="insertUnorderedList">&bull; List</button>
<button type="button" data-cmd="insertOrderedList">1. List</button>
<button type="button" data-cmd="justifyLeft">Left</button>
<button type="button" data-cmd="justifyCenter">Center</button>
<button type="button" data-cmd="justifyRight">Right</button>
<button type="button" data-cmd="createLink">Link</button>
</div>
<div class="richtext-editor" contenteditable="true">{{.HTML}}</div>
<input type="hidden" id="{{.ID}}" name="{{.Field.Name}}" value="{{.Text}}">
</div>{{end}}

{{define "field"}}<div class="form-item{{if .Error}} has-error{{end}}">
{{- if ne .Field.Kind "checkbox"}}
<label class="form-label" for="{{.ID}}">{{.Field.Label}}</label>{{end}}
{{.Widget}}
{{- with .Field.Description}}
<p class="form-description">{{.}}</p>{{end}}
{{- with .Error}}
<p class="form-message">{{.}}</p>{{end}}
</div>{{end}}

{{define "form"}}<form method="post" action="{{.Action}}" enctype="multipart/form-data" class="form">
{{- with .FormError}}
<p class="form-message">{{.}}</p>{{end}}
{{- range .Fields}}
{{.}}{{end}}
<button type="submit" class="btn btn-primary">{{.SubmitText}}</button>
</form>
{{- if .RichText}}
<script>
document.querySelectorAll('.richtext').forEach(function (root) {
  var editor = root.querySelector('.richtext-editor');
  var input = document.getElementById(root.dataset.target);
  var sync = function () { input.value = editor.innerHTML; };
  editor.addEventListener('input', sync);
  root.querySelectorAll('[data-cmd]').forEach(function (b) {
    b.addEventListener('click', function () {
      var arg = b.dataset.arg || null;
      if (b.dataset.cmd === 'createLink') { arg = prompt('URL'); if (!arg) return; }
      document.execCommand(b.dataset.cmd, false, arg);
      sync();
    });
  });
});
</script>{{end}}{{end}}
`
