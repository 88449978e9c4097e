package server

// clientScript is the browser side of the livedoc protocol: connect, apply
// ops in order, report events from listened elements. Kept deliberately
// small; everything interesting happens on the Go side.
//
// An update arrives as insertBefore(sid, markup carrying the same sid)
// followed by remove(sid), so between the two ops the document briefly holds
// two elements with that identity, the replacement first. Lookups therefore
// take the first match and remove takes the last, which is always the stale
// element.
const clientScript = `(function () {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/sprout/ws");

  function bySid(sid) {
    return document.querySelector('[data-sid="' + sid + '"]');
  }

  function allBySid(sid) {
    return document.querySelectorAll('[data-sid="' + sid + '"]');
  }

  function targetInfo(el) {
    var dataset = {};
    if (el && el.dataset) {
      for (var k in el.dataset) dataset[k] = el.dataset[k];
    }
    return {
      id: el ? el.getAttribute("data-sid") || "" : "",
      value: el && "value" in el ? String(el.value) : "",
      dataset: dataset
    };
  }

  var bound = {};

  function listen(sid, type, capture) {
    var el = bySid(sid);
    if (!el) return;
    var key = sid + " " + type + " " + capture;
    if (bound[key] && bound[key].el === el) return;
    if (bound[key]) bound[key].el.removeEventListener(type, bound[key].fn, capture);
    var fn = function (ev) {
      ws.send(JSON.stringify({
        sid: sid,
        type: type,
        capture: capture,
        target: targetInfo(ev.target)
      }));
    };
    el.addEventListener(type, fn, capture);
    bound[key] = { el: el, fn: fn };
  }

  ws.onmessage = function (msg) {
    var op = JSON.parse(msg.data);
    switch (op.op) {
      case "setContents": {
        var container = document.querySelector(op.selector);
        if (container) container.innerHTML = op.markup;
        break;
      }
      case "insertBefore": {
        var ref = bySid(op.sid);
        if (ref) ref.insertAdjacentHTML("beforebegin", op.markup);
        break;
      }
      case "remove": {
        var els = allBySid(op.sid);
        if (els.length) els[els.length - 1].remove();
        break;
      }
      case "listen":
        listen(op.sid, op.event, !!op.capture);
        break;
    }
  };
})();
`
